package capture

import (
	"github.com/rs/zerolog"

	"InkBoard/internal/geom"
	"InkBoard/internal/state"
)

// Capturer turns pointer gestures into samples on a surface. Like the
// surface it feeds, it must only be used from one goroutine.
type Capturer struct {
	surface *state.Surface
	tool    state.Tool
	pen     state.StrokeStyle
	norm    geom.Normalizer
	accept  Device
	desktop bool
	drawing bool

	Logger zerolog.Logger
}

// New returns a pen capturer for a surface displayed width device pixels
// wide. Only DevicePen input is accepted until desktop mode is enabled.
func New(surface *state.Surface, width float64) *Capturer {
	return &Capturer{
		surface: surface,
		tool:    state.ToolPen,
		pen:     state.DefaultStyle(),
		norm:    geom.Normalizer{Width: width},
		accept:  DevicePen,
		Logger:  zerolog.Nop(),
	}
}

func (c *Capturer) Surface() *state.Surface { return c.surface }

func (c *Capturer) Tool() state.Tool { return c.tool }

// SetTool switches tools. An unfinished gesture is abandoned, and leaving
// an edit tool for the pen drops the selection.
func (c *Capturer) SetTool(t state.Tool) {
	if t == c.tool {
		return
	}
	prev := c.tool
	c.tool = t
	c.drawing = false
	if c.surface.ActiveLen() > 0 {
		c.surface.ClearActiveStroke()
	}
	if prev.IsEdit() && !t.IsEdit() {
		c.surface.ClearHighlights()
	}
	c.Logger.Debug().Stringer("From", prev).Stringer("To", t).Msg("[CAPTURE] tool changed")
}

func (c *Capturer) PenStyle() state.StrokeStyle { return c.pen }

// SetPenStyle sets the preset used by the next pen stroke.
func (c *Capturer) SetPenStyle(style state.StrokeStyle) {
	c.pen = style.Clamp()
}

// Resize updates the device width used for normalization.
func (c *Capturer) Resize(width float64) {
	c.norm.Width = width
}

func (c *Capturer) Width() float64 { return c.norm.Width }

// SetAcceptedDevice selects the only device whose input is inked.
func (c *Capturer) SetAcceptedDevice(d Device) { c.accept = d }

// SetDesktopMode disables device filtering so a mouse can draw.
func (c *Capturer) SetDesktopMode(on bool) { c.desktop = on }

func (c *Capturer) DesktopMode() bool { return c.desktop }

// SetInvertPenColors controls whether finalized strokes swap their light
// and dark colors.
func (c *Capturer) SetInvertPenColors(on bool) { c.surface.SetInvertPenColors(on) }

// Drawing reports whether a gesture is in progress.
func (c *Capturer) Drawing() bool { return c.drawing }

func (c *Capturer) accepts(d Device) bool {
	return c.desktop || d == c.accept
}

func (c *Capturer) samples(points []RawPoint) []state.Sample {
	out := make([]state.Sample, 0, len(points))
	for _, p := range points {
		if !c.accepts(p.Device) {
			continue
		}
		pressure := state.DefaultPressure
		if p.HasPressure {
			pressure = p.Pressure
		}
		pt := c.norm.PointToLogical(geom.Pt(p.X, p.Y))
		out = append(out, state.NewSample(pt.X, pt.Y, pressure))
	}
	return out
}

// Begin starts a gesture. Input from a rejected device is ignored
// entirely and Begin reports false.
func (c *Capturer) Begin(points ...RawPoint) bool {
	samples := c.samples(points)
	if len(points) > 0 && len(samples) == 0 {
		return false
	}

	style := c.pen
	if c.tool.IsEdit() {
		c.surface.ClearActiveStroke()
		c.surface.ClearHighlights()
		style = LassoStyle()
	} else if c.surface.ActiveLen() > 0 {
		c.surface.FinalizeActiveStroke()
	}
	c.surface.BeginStroke(style)
	c.surface.AppendSamples(samples...)
	c.drawing = true
	return true
}

// Move appends the coalesced points of one pointer event.
func (c *Capturer) Move(points ...RawPoint) {
	if !c.drawing {
		return
	}
	c.surface.AppendSamples(c.samples(points)...)
}

// End appends the final points and applies the current tool to the
// finished gesture.
func (c *Capturer) End(points ...RawPoint) Result {
	if !c.drawing {
		return Result{Tool: c.tool}
	}
	c.surface.AppendSamples(c.samples(points)...)
	c.drawing = false
	res := HandleGestureEnd(c.tool, c.surface)
	c.Logger.Debug().Stringer("Tool", res.Tool).Bool("Committed", res.Committed).
		Int("Highlighted", res.Highlighted).Int("Erased", res.Erased).Msg("[CAPTURE] gesture ended")
	return res
}

// Cancel abandons the gesture and discards its samples.
func (c *Capturer) Cancel() {
	c.drawing = false
	if c.surface.ActiveLen() > 0 {
		c.surface.ClearActiveStroke()
	}
}

// Tap handles a single tap that is not a drawing gesture. Under an edit
// tool it dismisses the lasso and selection; under the pen it commits any
// stray stroke.
func (c *Capturer) Tap() {
	c.drawing = false
	if c.tool.IsEdit() {
		c.surface.ClearActiveStroke()
		c.surface.ClearHighlights()
		return
	}
	if c.surface.ActiveLen() > 0 {
		c.surface.FinalizeActiveStroke()
	}
}
