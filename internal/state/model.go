package state

import (
	"encoding/json"
	"math"

	"InkBoard/internal/geom"

	"github.com/google/uuid"
)

// DefaultPressure is used whenever an input device reports no force.
const DefaultPressure = 0.5

// Sample is one captured point of a stroke.
type Sample struct {
	Point    geom.Point `json:"point"`
	Pressure float64    `json:"pressure"`
}

// NewSample builds a Sample. Pressure above 1 is clamped; a negative or
// NaN pressure is replaced by DefaultPressure.
func NewSample(x, y, pressure float64) Sample {
	return Sample{Point: geom.Pt(x, y), Pressure: sanitizePressure(pressure)}
}

func sanitizePressure(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return DefaultPressure
	}
	return math.Min(p, 1)
}

// UnmarshalJSON defaults a missing pressure to DefaultPressure.
func (s *Sample) UnmarshalJSON(data []byte) error {
	var wire struct {
		Point    geom.Point `json:"point"`
		Pressure *float64   `json:"pressure"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.Point = wire.Point
	s.Pressure = DefaultPressure
	if wire.Pressure != nil {
		s.Pressure = sanitizePressure(*wire.Pressure)
	}
	return nil
}

// StrokeID is the stable handle of a stroke. Erase and move operations
// look strokes up by ID, never by pointer.
type StrokeID = uuid.UUID

// Stroke is one continuous pen gesture.
type Stroke struct {
	ID      StrokeID    `json:"id"`
	Style   StrokeStyle `json:"style"`
	Samples []Sample    `json:"samples"`
}

// NewStroke returns an empty stroke with a fresh ID.
func NewStroke(style StrokeStyle) Stroke {
	return Stroke{ID: uuid.New(), Style: style}
}

func (s Stroke) Len() int { return len(s.Samples) }

func (s Stroke) IsEmpty() bool { return len(s.Samples) == 0 }

// Renderable reports whether the stroke has enough samples for an outline.
func (s Stroke) Renderable() bool { return len(s.Samples) >= 2 }

// Points returns the raw sample positions.
func (s Stroke) Points() []geom.Point {
	pts := make([]geom.Point, len(s.Samples))
	for i, sm := range s.Samples {
		pts[i] = sm.Point
	}
	return pts
}

// BoundingBox is computed over raw sample points.
func (s Stroke) BoundingBox() (geom.BoundingBox, bool) {
	return geom.Bounds(s.Points())
}

// TotalLength is the sum of distances between consecutive samples.
func (s Stroke) TotalLength() float64 {
	return TotalLength(s.Samples)
}

// TotalLength is the sum of distances between consecutive samples.
func TotalLength(samples []Sample) float64 {
	var length float64
	for i := 1; i < len(samples); i++ {
		length += samples[i-1].Point.Dist(samples[i].Point)
	}
	return length
}

// Clone returns a copy that shares no sample storage with s.
func (s Stroke) Clone() Stroke {
	c := s
	c.Samples = append([]Sample(nil), s.Samples...)
	return c
}

// Translate returns a copy of s moved by off.
func (s Stroke) Translate(off geom.Point) Stroke {
	c := s.Clone()
	for i := range c.Samples {
		c.Samples[i].Point = c.Samples[i].Point.Add(off)
	}
	return c
}

// Finalized returns the copy of s that is committed into a layer. With
// invert set the light and dark colors trade places.
func (s Stroke) Finalized(invert bool) Stroke {
	c := s.Clone()
	if invert {
		c.Style.Color = c.Style.Color.Swapped()
	}
	return c
}
