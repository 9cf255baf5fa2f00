package outline

import (
	"math"
	"slices"

	"InkBoard/internal/geom"
	"InkBoard/internal/state"
)

// minRadius keeps tapered tips from collapsing to a single point.
const minRadius = 0.01

// Outline is the silhouette of one stroke.
type Outline struct {
	Top     []geom.Point
	Bottom  []geom.Point
	Polygon []geom.Point

	// Bounds covers the raw sample points, not the outline.
	Bounds    geom.BoundingBox
	HasBounds bool
}

// Empty reports whether there is nothing to fill.
func (o Outline) Empty() bool { return len(o.Polygon) == 0 }

// ForStroke generates the outline of st with its own style.
func ForStroke(st state.Stroke) Outline {
	return Generate(st.Samples, st.Style)
}

// Generate builds the outline polygon of samples drawn with style.
// Fewer than two samples produce an empty outline.
func Generate(samples []state.Sample, style state.StrokeStyle) Outline {
	if len(samples) < 2 {
		return Outline{}
	}
	style = style.Clamp()

	var o Outline
	raw := make([]geom.Point, len(samples))
	for i, s := range samples {
		raw[i] = s.Point
	}
	o.Bounds, o.HasBounds = geom.Bounds(raw)

	pts := strokePoints(samples, style)
	if len(pts) < 2 {
		return o
	}
	if style.SimulatePressure && style.Thinning != 0 {
		simulatePressure(pts, style.Size)
	}

	o.Top, o.Bottom = rails(pts, style)
	o.Polygon = make([]geom.Point, 0, len(o.Top)+len(o.Bottom))
	o.Polygon = append(o.Polygon, o.Top...)
	bottom := slices.Clone(o.Bottom)
	slices.Reverse(bottom)
	o.Polygon = append(o.Polygon, bottom...)
	return o
}

// Radius is the half width of a stroke at the given pressure. Easing
// shapes the pressure, and thinning scales how far the eased pressure
// moves the width away from half the pen size.
func Radius(size, thinning, pressure float64, easing state.Easing) float64 {
	if thinning == 0 {
		return size / 2
	}
	p := easing.Apply(math.Max(0, math.Min(1, pressure)))
	return size / 2 * (1 + thinning*(p-0.5))
}

// taper returns the width multiplier for a point dist units away from a
// stroke end.
func taper(c state.CapStyle, dist float64) float64 {
	if c.Capped || c.Taper <= 0 || dist >= c.Taper {
		return 1
	}
	return c.Easing.Apply(dist / c.Taper)
}

func rails(pts []strokePoint, style state.StrokeStyle) (top, bottom []geom.Point) {
	last := len(pts) - 1
	total := pts[last].running
	minDist := (style.Size * style.Smoothing) * (style.Size * style.Smoothing)

	top = make([]geom.Point, 0, len(pts))
	bottom = make([]geom.Point, 0, len(pts))
	push := func(i int, t, b geom.Point) {
		keep := i <= 1 || i == last
		if keep || len(top) == 0 || top[len(top)-1].Dist2(t) > minDist {
			top = append(top, t)
		}
		if keep || len(bottom) == 0 || bottom[len(bottom)-1].Dist2(b) > minDist {
			bottom = append(bottom, b)
		}
	}

	for i, sp := range pts {
		r := Radius(style.Size, style.Thinning, sp.pressure, style.Easing)
		r *= math.Min(taper(style.Start, sp.running), taper(style.End, total-sp.running))
		r = math.Max(minRadius, r)

		switch {
		case i == 0:
			a := pts[1].point.Sub(sp.point).Angle()
			push(i, sp.point.Offset(r, a+math.Pi/2), sp.point.Offset(r, a-math.Pi/2))
		case i == last:
			a := sp.point.Sub(pts[i-1].point).Angle()
			push(i, sp.point.Offset(r, a+math.Pi/2), sp.point.Offset(r, a-math.Pi/2))
		default:
			in := sp.point.Sub(pts[i-1].point)
			out := pts[i+1].point.Sub(sp.point)
			if in.Dot(out) < 0 {
				// Sharp turn: offset along both segments so the rails
				// follow the corner instead of crossing.
				a, b := in.Angle(), out.Angle()
				push(i, sp.point.Offset(r, a+math.Pi/2), sp.point.Offset(r, a-math.Pi/2))
				push(i, sp.point.Offset(r, b+math.Pi/2), sp.point.Offset(r, b-math.Pi/2))
				continue
			}
			a := pts[i+1].point.Sub(pts[i-1].point).Angle()
			push(i, sp.point.Offset(r, a+math.Pi/2), sp.point.Offset(r, a-math.Pi/2))
		}
	}
	return top, bottom
}
