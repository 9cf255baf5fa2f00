package state

import (
	"image/color"
	"math"
)

// Parameter ranges of a pen.
const (
	MinSize       = 1.0
	MaxSize       = 60.0
	MinThinning   = -1.0
	MaxThinning   = 1.0
	MinSmoothing  = 0.0
	MaxSmoothing  = 1.0
	MinStreamline = 0.0
	MaxStreamline = 1.0
)

// Color is a straight (non premultiplied) RGBA color with 0..1 channels.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// NRGBA converts c for image drawing.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// ColorFrom converts any image color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255, A: float64(n.A) / 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}

// ColorPair stores the color a stroke renders with under each scheme.
type ColorPair struct {
	Light Color `json:"light"`
	Dark  Color `json:"dark"`
}

// For picks the color for scheme; invert selects the opposite entry.
func (p ColorPair) For(scheme ColorScheme, invert bool) Color {
	if (scheme == Dark) != invert {
		return p.Dark
	}
	return p.Light
}

// Swapped exchanges the light and dark entries.
func (p ColorPair) Swapped() ColorPair {
	return ColorPair{Light: p.Dark, Dark: p.Light}
}

// CapStyle shapes one end of a stroke. A capped end terminates with a
// flat edge; an uncapped end with a positive taper narrows to a point.
type CapStyle struct {
	Capped bool    `json:"capped"`
	Taper  float64 `json:"taper"`
	Easing Easing  `json:"easing"`
}

// StrokeStyle carries every pen parameter the outline generator reads.
type StrokeStyle struct {
	Size             float64   `json:"size"`
	Thinning         float64   `json:"thinning"`
	Smoothing        float64   `json:"smoothing"`
	Streamline       float64   `json:"streamline"`
	Easing           Easing    `json:"easing"`
	SimulatePressure bool      `json:"simulatePressure"`
	Start            CapStyle  `json:"start"`
	End              CapStyle  `json:"end"`
	Color            ColorPair `json:"color"`
}

// DefaultStyle is the stock pen.
func DefaultStyle() StrokeStyle {
	return StrokeStyle{
		Size:             5,
		Thinning:         0.5,
		Smoothing:        0.5,
		Streamline:       0.5,
		Easing:           EaseLinear,
		SimulatePressure: true,
		Start:            CapStyle{Capped: true, Easing: EaseLinear},
		End:              CapStyle{Capped: true, Easing: EaseLinear},
		Color: ColorPair{
			Light: Color{R: 0, G: 0, B: 0, A: 0.9103134788},
			Dark:  Color{R: 1, G: 1, B: 1, A: 0.9042767643},
		},
	}
}

// Clamp forces every numeric parameter into its documented range.
func (s StrokeStyle) Clamp() StrokeStyle {
	s.Size = clamp(s.Size, MinSize, MaxSize)
	s.Thinning = clamp(s.Thinning, MinThinning, MaxThinning)
	s.Smoothing = clamp(s.Smoothing, MinSmoothing, MaxSmoothing)
	s.Streamline = clamp(s.Streamline, MinStreamline, MaxStreamline)
	s.Start.Taper = math.Max(0, s.Start.Taper)
	s.End.Taper = math.Max(0, s.End.Taper)
	return s
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
