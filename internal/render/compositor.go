package render

import (
	"github.com/rs/zerolog"

	"InkBoard/internal/geom"
	"InkBoard/internal/outline"
	"InkBoard/internal/state"
)

const (
	// HighlightAlpha replaces the alpha of selected strokes.
	HighlightAlpha = 0.3
	// MarkerRadius is the radius of the dot at the selection center.
	MarkerRadius = 5.0
	chromeWidth  = 1.5
)

var chromeColor = state.Color{R: 0, G: 0.478, B: 1, A: 1}

// Options describes one frame.
type Options struct {
	Width, Height float64
	Scheme        state.ColorScheme
	Invert        bool
	Tool          state.Tool
	Paper         bool
}

// Stats counts what a frame drew.
type Stats struct {
	Strokes int
	Skipped int
}

// Compositor draws a surface onto a Canvas. It keeps no state between
// frames and may be shared.
type Compositor struct {
	Logger zerolog.Logger
}

func NewCompositor() *Compositor {
	return &Compositor{Logger: zerolog.Nop()}
}

// Render draws s in layer order: paper, the pen preview when it targets
// the background, background strokes, foreground strokes, the pen preview
// when it targets the foreground, the lasso of an edit tool and finally
// the selection chrome. A hidden surface draws nothing.
func (c *Compositor) Render(dst Canvas, s *state.Surface, opts Options) Stats {
	f := frame{dst: dst, opts: opts, norm: geom.Normalizer{Width: opts.Width}}
	if !s.Visible() {
		return f.stats
	}

	if opts.Paper {
		DrawPaper(dst, opts.Width, opts.Height, opts.Scheme)
	}

	preview := opts.Tool == state.ToolPen && s.ActiveLen() > 0
	if preview && s.ActiveLayer() == state.Background {
		f.stroke(s.Active(), false)
	}
	for _, l := range []state.Layer{state.Background, state.Foreground} {
		for _, st := range s.Strokes(l) {
			f.stroke(st, s.IsHighlighted(st.ID))
		}
	}
	if preview && s.ActiveLayer() == state.Foreground {
		f.stroke(s.Active(), false)
	}

	if opts.Tool.IsEdit() && s.ActiveLen() > 0 {
		active := s.Active()
		if box, ok := active.BoundingBox(); ok {
			dst.StrokeRect(f.norm.BoxToDevice(box), chromeWidth, chromeColor)
		}
		f.stroke(active, true)
	}

	if box, ok := s.HighlightBoundingBox(); ok {
		box = f.norm.BoxToDevice(box)
		dst.StrokeRect(box, chromeWidth, chromeColor)
		dst.FillCircle(box.Center(), MarkerRadius, chromeColor)
	}

	c.Logger.Trace().Int("Strokes", f.stats.Strokes).Int("Skipped", f.stats.Skipped).Msg("[RENDER] frame")
	return f.stats
}

type frame struct {
	dst   Canvas
	opts  Options
	norm  geom.Normalizer
	stats Stats
}

func (f *frame) stroke(st state.Stroke, highlighted bool) {
	o := outline.ForStroke(st)
	if len(o.Polygon) <= 2 {
		f.stats.Skipped++
		return
	}
	col := st.Style.Color.For(f.opts.Scheme, f.opts.Invert)
	if highlighted {
		col = col.WithAlpha(HighlightAlpha)
	}
	f.dst.FillPolygon(f.norm.PointsToDevice(o.Polygon), col)
	f.stats.Strokes++
}
