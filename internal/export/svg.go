package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
	"github.com/pkg/errors"

	"InkBoard/internal/geom"
	"InkBoard/internal/render"
	"InkBoard/internal/state"
)

// svgDecimals is the coordinate precision of exported documents.
const svgDecimals = 3

// svgCanvas appends one element per draw call.
type svgCanvas struct {
	doc *svg.SVG
}

var _ render.Canvas = svgCanvas{}

func attr(name, value string) string {
	return name + `="` + value + `"`
}

func hex(c state.Color) string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fill(c state.Color) []string {
	return []string{attr("fill", hex(c)), attr("fill-opacity", number(c.A))}
}

func stroke(width float64, c state.Color) []string {
	return []string{
		attr("fill", "none"),
		attr("stroke", hex(c)),
		attr("stroke-opacity", number(c.A)),
		attr("stroke-width", number(width)),
	}
}

func (s svgCanvas) FillPolygon(pts []geom.Point, c state.Color) {
	if len(pts) < 3 {
		return
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	s.doc.Polygon(xs, ys, fill(c)...)
}

func (s svgCanvas) StrokeRect(b geom.BoundingBox, width float64, c state.Color) {
	s.doc.Rect(b.MinX, b.MinY, b.Width(), b.Height(), stroke(width, c)...)
}

func (s svgCanvas) FillCircle(center geom.Point, radius float64, c state.Color) {
	s.doc.Circle(center.X, center.Y, radius, fill(c)...)
}

func (s svgCanvas) StrokeLine(a, b geom.Point, width float64, c state.Color) {
	s.doc.Line(a.X, a.Y, b.X, b.Y, stroke(width, c)...)
}

// WriteSVG writes s as a standalone SVG document.
func (e *Exporter) WriteSVG(w io.Writer, s *state.Surface, opts render.Options) error {
	bw := bufio.NewWriter(w)
	doc := svg.New(bw)
	doc.Decimals = svgDecimals
	doc.Startview(opts.Width, opts.Height, 0, 0, opts.Width, opts.Height)

	c := svgCanvas{doc: doc}
	fillPage(c, opts)
	stats := e.Compositor.Render(c, s, opts)

	doc.End()
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "export: write svg")
	}
	e.Logger.Debug().Int("Strokes", stats.Strokes).Msg("[EXPORT] svg written")
	return nil
}
