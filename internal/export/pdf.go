package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"InkBoard/internal/geom"
	"InkBoard/internal/render"
	"InkBoard/internal/state"
)

// pdfCanvas draws onto the current page of a gofpdf document, one PDF
// point per pixel.
type pdfCanvas struct {
	pdf *gofpdf.Fpdf
}

var _ render.Canvas = pdfCanvas{}

func rgb(c state.Color) (int, int, int) {
	n := c.NRGBA()
	return int(n.R), int(n.G), int(n.B)
}

func (p pdfCanvas) FillPolygon(pts []geom.Point, c state.Color) {
	if len(pts) < 3 {
		return
	}
	poly := make([]gofpdf.PointType, len(pts))
	for i, pt := range pts {
		poly[i] = gofpdf.PointType{X: pt.X, Y: pt.Y}
	}
	p.pdf.SetFillColor(rgb(c))
	p.pdf.SetAlpha(c.A, "Normal")
	p.pdf.Polygon(poly, "F")
	p.pdf.SetAlpha(1, "Normal")
}

func (p pdfCanvas) StrokeRect(b geom.BoundingBox, width float64, c state.Color) {
	p.pdf.SetDrawColor(rgb(c))
	p.pdf.SetLineWidth(width)
	p.pdf.SetAlpha(c.A, "Normal")
	p.pdf.Rect(b.MinX, b.MinY, b.Width(), b.Height(), "D")
	p.pdf.SetAlpha(1, "Normal")
}

func (p pdfCanvas) FillCircle(center geom.Point, radius float64, c state.Color) {
	p.pdf.SetFillColor(rgb(c))
	p.pdf.SetAlpha(c.A, "Normal")
	p.pdf.Circle(center.X, center.Y, radius, "F")
	p.pdf.SetAlpha(1, "Normal")
}

func (p pdfCanvas) StrokeLine(a, b geom.Point, width float64, c state.Color) {
	p.pdf.SetDrawColor(rgb(c))
	p.pdf.SetLineWidth(width)
	p.pdf.SetAlpha(c.A, "Normal")
	p.pdf.Line(a.X, a.Y, b.X, b.Y)
	p.pdf.SetAlpha(1, "Normal")
}

// WritePDF writes s as a single page PDF sized to opts.
func (e *Exporter) WritePDF(w io.Writer, s *state.Surface, opts render.Options) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: opts.Width, Ht: opts.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	c := pdfCanvas{pdf: pdf}
	fillPage(c, opts)
	stats := e.Compositor.Render(c, s, opts)

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "export: write pdf")
	}
	e.Logger.Debug().Int("Strokes", stats.Strokes).Msg("[EXPORT] pdf written")
	return nil
}
