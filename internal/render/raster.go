package render

import (
	"image"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"InkBoard/internal/geom"
	"InkBoard/internal/state"
)

// RasterCanvas rasterizes onto an RGBA image with anti-aliasing.
type RasterCanvas struct {
	img     *image.RGBA
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

var _ Canvas = (*RasterCanvas)(nil)

func NewRasterCanvas(img *image.RGBA) *RasterCanvas {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	return &RasterCanvas{
		img:     img,
		filler:  rasterx.NewFiller(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())),
		stroker: rasterx.NewStroker(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())),
	}
}

func (r *RasterCanvas) Image() *image.RGBA { return r.img }

// Fill paints the whole image with c.
func (r *RasterCanvas) Fill(c state.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

func (r *RasterCanvas) FillPolygon(pts []geom.Point, c state.Color) {
	if len(pts) < 3 {
		return
	}
	r.filler.Clear()
	r.filler.SetColor(c.NRGBA())
	r.filler.Start(rasterx.ToFixedP(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		r.filler.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	r.filler.Stop(true)
	r.filler.Draw()
}

func (r *RasterCanvas) setStroke(width float64, c state.Color) {
	r.stroker.Clear()
	r.stroker.SetStroke(fixed.Int26_6(width*64), 4<<6, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.MiterClip)
	r.stroker.SetColor(c.NRGBA())
}

func (r *RasterCanvas) StrokeRect(b geom.BoundingBox, width float64, c state.Color) {
	r.setStroke(width, c)
	rasterx.AddRect(b.MinX, b.MinY, b.MaxX, b.MaxY, 0, r.stroker)
	r.stroker.Draw()
}

func (r *RasterCanvas) FillCircle(center geom.Point, radius float64, c state.Color) {
	r.filler.Clear()
	r.filler.SetColor(c.NRGBA())
	rasterx.AddCircle(center.X, center.Y, radius, r.filler)
	r.filler.Draw()
}

func (r *RasterCanvas) StrokeLine(a, b geom.Point, width float64, c state.Color) {
	r.setStroke(width, c)
	r.stroker.Start(rasterx.ToFixedP(a.X, a.Y))
	r.stroker.Line(rasterx.ToFixedP(b.X, b.Y))
	r.stroker.Stop(false)
	r.stroker.Draw()
}

// RenderImage draws s into a new image sized from opts, on a paper
// colored background.
func (c *Compositor) RenderImage(s *state.Surface, opts Options) *image.RGBA {
	w, h := int(opts.Width+0.5), int(opts.Height+0.5)
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	rc := NewRasterCanvas(img)
	rc.Fill(PaperColor(opts.Scheme))
	c.Render(rc, s, opts)
	return img
}
