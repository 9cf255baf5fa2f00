package state

import (
	"encoding/json"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasingEndpoints(t *testing.T) {
	for _, e := range Easings() {
		assert.InDelta(t, 0, e.Apply(0), 1e-3, e.String())
		assert.InDelta(t, 1, e.Apply(1), 1e-3, e.String())
	}
	assert.Len(t, Easings(), 18)
}

func TestEasingNames(t *testing.T) {
	for _, e := range Easings() {
		assert.Equal(t, e, ParseEasing(e.String()))
	}
	assert.Equal(t, EaseLinear, ParseEasing("bogus"))

	var e Easing
	require.NoError(t, json.Unmarshal([]byte(`"easeOutCubic"`), &e))
	assert.Equal(t, EaseOutCubic, e)
}

func TestClamp(t *testing.T) {
	s := StrokeStyle{Size: 100, Thinning: -3, Smoothing: 2, Streamline: -1,
		Start: CapStyle{Taper: -4}, End: CapStyle{Taper: 12}}.Clamp()
	assert.Equal(t, MaxSize, s.Size)
	assert.Equal(t, MinThinning, s.Thinning)
	assert.Equal(t, MaxSmoothing, s.Smoothing)
	assert.Equal(t, MinStreamline, s.Streamline)
	assert.Equal(t, 0.0, s.Start.Taper)
	assert.Equal(t, 12.0, s.End.Taper)
}

func TestColorPairFor(t *testing.T) {
	p := ColorPair{Light: Color{A: 1}, Dark: Color{R: 1, G: 1, B: 1, A: 1}}
	assert.Equal(t, p.Light, p.For(Light, false))
	assert.Equal(t, p.Dark, p.For(Dark, false))
	assert.Equal(t, p.Dark, p.For(Light, true))
	assert.Equal(t, p.Light, p.For(Dark, true))
}

func TestColorConversion(t *testing.T) {
	c := ColorFrom(color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 51, A: 255}, c.NRGBA())
	assert.InDelta(t, 76.5, float64(c.WithAlpha(0.3).NRGBA().A), 0.5)
}

func TestLayerText(t *testing.T) {
	var l Layer
	require.NoError(t, l.UnmarshalText([]byte("background")))
	assert.Equal(t, Background, l)
	assert.Error(t, l.UnmarshalText([]byte("middle")))

	b, err := json.Marshal(struct{ L Layer }{Background})
	require.NoError(t, err)
	assert.JSONEq(t, `{"L":"background"}`, string(b))
}

func TestSampleMissingPressure(t *testing.T) {
	var sm Sample
	require.NoError(t, json.Unmarshal([]byte(`{"point":{"x":1,"y":2}}`), &sm))
	assert.Equal(t, DefaultPressure, sm.Pressure)

	require.NoError(t, json.Unmarshal([]byte(`{"point":{"x":1,"y":2},"pressure":0}`), &sm))
	assert.Equal(t, 0.0, sm.Pressure)
}

func TestTools(t *testing.T) {
	assert.False(t, ToolPen.IsEdit())
	assert.True(t, ToolSelection.IsEdit())
	assert.True(t, ToolEraser.IsEdit())
	for _, tool := range []Tool{ToolPen, ToolSelection, ToolEraser} {
		got, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, got)
	}
}

func TestEasingMonotone(t *testing.T) {
	const steps = 200
	for _, e := range Easings() {
		assert.InDelta(t, 0, e.Apply(0), 1e-12, e.String())
		assert.InDelta(t, 1, e.Apply(1), 1e-12, e.String())
		prev := e.Apply(0)
		for i := 1; i <= steps; i++ {
			v := e.Apply(float64(i) / steps)
			require.GreaterOrEqual(t, v, prev-1e-12, "%s at %d", e, i)
			require.LessOrEqual(t, v, 1+1e-12, "%s at %d", e, i)
			prev = v
		}
	}
}

func TestEasingOutCurves(t *testing.T) {
	assert.InDelta(t, 0.875, EaseOutCubic.Apply(0.5), 1e-12)
	assert.InDelta(t, 0.9375, EaseOutQuart.Apply(0.5), 1e-12)
	assert.InDelta(t, 0.5, EaseInOutQuart.Apply(0.5), 1e-12)
	assert.InDelta(t, 0.5, EaseInOutQuint.Apply(0.5), 1e-12)
	assert.InDelta(t, 1-8*math.Pow(0.25, 4), EaseInOutQuart.Apply(0.75), 1e-12)
}
