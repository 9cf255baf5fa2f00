package outline

import (
	"math"

	"InkBoard/internal/geom"
	"InkBoard/internal/state"
)

// minSegment is the length under which a segment counts as degenerate.
const minSegment = 1e-9

// pressureRate is how quickly simulated pressure follows pen speed.
const pressureRate = 0.275

type strokePoint struct {
	point    geom.Point
	pressure float64
	distance float64
	running  float64
}

func pressureOf(s state.Sample) float64 {
	if math.IsNaN(s.Pressure) || s.Pressure < 0 {
		return state.DefaultPressure
	}
	return math.Min(1, s.Pressure)
}

// subdivide expands a two-sample stroke into five evenly spaced samples so
// tapering has room to work.
func subdivide(a, b state.Sample) []state.Sample {
	out := make([]state.Sample, 0, 5)
	for i := 0; i <= 4; i++ {
		t := float64(i) / 4
		out = append(out, state.Sample{
			Point:    a.Point.Lerp(b.Point, t),
			Pressure: pressureOf(a) + (pressureOf(b)-pressureOf(a))*t,
		})
	}
	return out
}

// strokePoints resamples samples by the streamline factor and drops
// duplicate points. The final sample is always kept exactly.
func strokePoints(samples []state.Sample, style state.StrokeStyle) []strokePoint {
	if len(samples) == 2 {
		samples = subdivide(samples[0], samples[1])
	}
	t := 0.15 + (1-style.Streamline)*0.85

	out := make([]strokePoint, 0, len(samples))
	out = append(out, strokePoint{point: samples[0].Point, pressure: pressureOf(samples[0])})
	prev := samples[0].Point
	last := len(samples) - 1
	var running float64
	for i := 1; i <= last; i++ {
		p := samples[i].Point
		if i < last {
			p = prev.Lerp(p, t)
		}
		d := prev.Dist(p)
		if d < minSegment {
			continue
		}
		running += d
		out = append(out, strokePoint{
			point:    p,
			pressure: pressureOf(samples[i]),
			distance: d,
			running:  running,
		})
		prev = p
	}
	return out
}

// simulatePressure replaces input pressure with one derived from speed:
// fast movement thins the line, slow movement thickens it.
func simulatePressure(pts []strokePoint, size float64) {
	step := func(prev float64, p strokePoint) float64 {
		sp := math.Min(1, p.distance/size)
		rp := math.Min(1, 1-sp)
		return math.Min(1, prev+(rp-prev)*(sp*pressureRate))
	}
	// Seed from the first few points so lines do not start fat.
	prev := pts[0].pressure
	for i := 0; i < len(pts) && i < 10; i++ {
		prev = (prev + step(prev, pts[i])) / 2
	}
	for i := range pts {
		pts[i].pressure = step(prev, pts[i])
		prev = pts[i].pressure
	}
}
