package state

import (
	"encoding/json"
	"math"
	"testing"

	"InkBoard/internal/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(style StrokeStyle, pts ...geom.Point) Stroke {
	st := NewStroke(style)
	for _, p := range pts {
		st.Samples = append(st.Samples, Sample{Point: p, Pressure: DefaultPressure})
	}
	return st
}

func TestFinalizeActiveStroke(t *testing.T) {
	s := NewSurface()
	s.BeginStroke(DefaultStyle())
	s.AppendSamples(NewSample(0, 0, 0.5), NewSample(10, 0, 0.5))

	require.True(t, s.FinalizeActiveStroke())
	assert.Equal(t, 1, s.StrokeCount(Foreground))
	assert.Equal(t, 0, s.StrokeCount(Background))
	assert.True(t, s.Active().IsEmpty())

	s.SetActiveLayer(Background)
	s.BeginStroke(DefaultStyle())
	s.AppendSamples(NewSample(0, 0, 0.5), NewSample(0, 10, 0.5))
	require.True(t, s.FinalizeActiveStroke())
	assert.Equal(t, 1, s.StrokeCount(Background))
}

func TestFinalizeDiscardsShortStrokes(t *testing.T) {
	s := NewSurface()
	assert.False(t, s.FinalizeActiveStroke(), "empty stroke")

	s.BeginStroke(DefaultStyle())
	s.AppendSamples(NewSample(5, 5, 0.5))
	assert.False(t, s.FinalizeActiveStroke(), "single sample stroke")
	assert.Equal(t, 0, s.StrokeCount(Foreground))
	assert.True(t, s.Active().IsEmpty())
}

func TestFinalizeInvertsColors(t *testing.T) {
	s := NewSurface()
	s.SetInvertPenColors(true)
	style := DefaultStyle()
	s.BeginStroke(style)
	s.AppendSamples(NewSample(0, 0, 0.5), NewSample(1, 1, 0.5))
	require.True(t, s.FinalizeActiveStroke())

	got := s.Strokes(Foreground)[0].Style.Color
	assert.Equal(t, style.Color.Dark, got.Light)
	assert.Equal(t, style.Color.Light, got.Dark)
}

func TestUpdateHighlightsSelectsWholeStrokes(t *testing.T) {
	s := NewSurface()
	a := line(DefaultStyle(), geom.Pt(10, 10), geom.Pt(20, 20))
	b := line(DefaultStyle(), geom.Pt(200, 200), geom.Pt(300, 300))
	c := line(DefaultStyle(), geom.Pt(45, 45), geom.Pt(500, 500))
	require.True(t, s.AddStroke(Foreground, a))
	require.True(t, s.AddStroke(Background, b))
	require.True(t, s.AddStroke(Background, c))

	n := s.UpdateHighlights(geom.Box(0, 0, 50, 50))
	assert.Equal(t, 2, n)
	assert.True(t, s.IsHighlighted(a.ID))
	assert.False(t, s.IsHighlighted(b.ID))
	assert.True(t, s.IsHighlighted(c.ID))

	s.UpdateHighlights(geom.Box(250, 250, 260, 260))
	assert.False(t, s.IsHighlighted(a.ID), "previous highlights are replaced")
	assert.False(t, s.IsHighlighted(b.ID), "segment crossing without a sample inside is not selected")
}

func TestUpdateHighlightsInclusiveEdge(t *testing.T) {
	s := NewSurface()
	a := line(DefaultStyle(), geom.Pt(50, 50), geom.Pt(90, 90))
	s.AddStroke(Foreground, a)

	s.UpdateHighlights(geom.Box(0, 0, 50, 50))
	assert.True(t, s.IsHighlighted(a.ID))
}

func TestEraseHighlightedIsIdempotent(t *testing.T) {
	s := NewSurface()
	a := line(DefaultStyle(), geom.Pt(0, 0), geom.Pt(10, 0))
	b := line(DefaultStyle(), geom.Pt(100, 100), geom.Pt(110, 100))
	s.AddStroke(Foreground, a)
	s.AddStroke(Background, b)
	s.UpdateHighlights(geom.Box(-1, -1, 11, 1))

	assert.Equal(t, 1, s.EraseHighlighted())
	after := s.Data()
	version := s.Version()

	assert.Equal(t, 0, s.EraseHighlighted())
	assert.Equal(t, after, s.Data())
	assert.Equal(t, version, s.Version(), "no-op erase does not signal")
	assert.Equal(t, 0, s.StrokeCount(Foreground))
	assert.Equal(t, 1, s.StrokeCount(Background))
	assert.Empty(t, s.Highlighted())
}

func TestDragTransform(t *testing.T) {
	s := NewSurface()
	a := line(DefaultStyle(), geom.Pt(0, 0), geom.Pt(20, 20))
	b := line(DefaultStyle(), geom.Pt(500, 500), geom.Pt(520, 520))
	s.AddStroke(Foreground, a)
	s.AddStroke(Foreground, b)

	assert.False(t, s.DragTransform(geom.Pt(100, 100)), "nothing highlighted")

	s.UpdateHighlights(geom.Box(0, 0, 1, 1))
	require.True(t, s.DragTransform(geom.Pt(110, 10)))

	moved, _, ok := s.Stroke(a.ID)
	require.True(t, ok)
	// center (10,10), pointer (110,10) => offset (10,0)
	assert.Equal(t, geom.Pt(10, 0), moved.Samples[0].Point)
	assert.Equal(t, geom.Pt(30, 20), moved.Samples[1].Point)

	still, _, _ := s.Stroke(b.ID)
	assert.Equal(t, b.Samples, still.Samples)

	require.True(t, s.DragTransform(geom.Pt(110, 10)))
	moved, _, _ = s.Stroke(a.ID)
	assert.Equal(t, geom.Pt(19, 0), moved.Samples[0].Point, "repeated drags keep converging")
}

func TestBoundingBoxQueries(t *testing.T) {
	s := NewSurface()
	_, ok := s.BoundingBox(false)
	assert.False(t, ok)
	_, ok = s.BoundingBox(true)
	assert.False(t, ok)

	a := line(DefaultStyle(), geom.Pt(0, 0), geom.Pt(10, 5))
	b := line(DefaultStyle(), geom.Pt(50, -5), geom.Pt(60, 0))
	s.AddStroke(Foreground, a)
	s.AddStroke(Background, b)

	all, ok := s.BoundingBox(false)
	require.True(t, ok)
	assert.Equal(t, geom.Box(0, -5, 60, 5), all)

	s.UpdateHighlights(geom.Box(55, -1, 65, 1))
	hl, ok := s.BoundingBox(true)
	require.True(t, ok)
	assert.Equal(t, geom.Box(50, -5, 60, 0), hl)
}

func TestTotalLength(t *testing.T) {
	st := line(DefaultStyle(), geom.Pt(0, 0), geom.Pt(3, 4), geom.Pt(3, 10))
	assert.Equal(t, 11.0, st.TotalLength())
	assert.Equal(t, 0.0, TotalLength(nil))
}

func TestChangeSignal(t *testing.T) {
	s := NewSurface()
	var got []Change
	cancel := s.Subscribe(func(c Change) { got = append(got, c) })

	s.BeginStroke(DefaultStyle())
	s.AppendSamples(NewSample(0, 0, 0.5), NewSample(1, 0, 0.5))
	s.FinalizeActiveStroke()

	require.Len(t, got, 3)
	assert.Equal(t, ChangeStrokes, got[2].Kind)
	assert.Equal(t, s.Version(), got[2].Version)

	cancel()
	s.ClearActiveStroke()
	assert.Len(t, got, 3)
	assert.Equal(t, uint64(4), s.Version())
}

func TestDataRoundTrip(t *testing.T) {
	s := NewSurface()
	a := line(DefaultStyle(), geom.Pt(1, 2), geom.Pt(3, 4))
	s.AddStroke(Foreground, a)
	s.UpdateHighlights(geom.Box(0, 0, 5, 5))
	s.SetPanelHeight(480)

	d := s.Data()
	restored := NewSurfaceFromData(d)
	assert.Equal(t, d, restored.Data())
	assert.True(t, restored.IsHighlighted(a.ID))
}

func TestNewSampleDefaultsPressure(t *testing.T) {
	assert.Equal(t, DefaultPressure, NewSample(0, 0, -1).Pressure)
	assert.Equal(t, DefaultPressure, NewSample(0, 0, math.NaN()).Pressure)
	assert.Equal(t, 0.0, NewSample(0, 0, 0).Pressure)
	assert.Equal(t, 0.8, NewSample(0, 0, 0.8).Pressure)
}

func TestNewSampleClampsHighPressure(t *testing.T) {
	assert.Equal(t, 1.0, NewSample(0, 0, 1.02).Pressure)
	assert.Equal(t, 1.0, NewSample(0, 0, 1.5).Pressure)

	var sm Sample
	require.NoError(t, json.Unmarshal([]byte(`{"point":{"x":1,"y":2},"pressure":3}`), &sm))
	assert.Equal(t, 1.0, sm.Pressure)
}
