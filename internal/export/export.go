// Package export writes a drawing surface as PDF, SVG or PNG. Every
// format is produced by running the render compositor against a
// format specific canvas, so exports look exactly like the screen.
package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"InkBoard/internal/geom"
	"InkBoard/internal/render"
	"InkBoard/internal/state"
)

type Format int

const (
	PDF Format = iota
	SVG
	PNG
)

func (f Format) String() string {
	switch f {
	case PDF:
		return "pdf"
	case SVG:
		return "svg"
	case PNG:
		return "png"
	}
	return "unknown"
}

// Ext is the file extension including the dot.
func (f Format) Ext() string { return "." + f.String() }

// FormatFor picks a format from a file name's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDF, nil
	case ".svg":
		return SVG, nil
	case ".png":
		return PNG, nil
	}
	return PDF, errors.Errorf("export: unsupported file type %q", filepath.Ext(path))
}

// pageMargin is kept below the lowest stroke.
const pageMargin = 50.0

// PageOptions sizes a page width pixels wide that fits the whole
// drawing: at least the panel height, and tall enough for every stroke.
func PageOptions(s *state.Surface, width float64, scheme state.ColorScheme, paper bool) render.Options {
	height := s.PanelHeight()
	if box, ok := s.BoundingBox(false); ok {
		height = max(height, box.MaxY+pageMargin)
	}
	return render.Options{
		Width:  width,
		Height: height,
		Scheme: scheme,
		Tool:   state.ToolPen,
		Paper:  paper,
	}
}

// Exporter renders surfaces into files.
type Exporter struct {
	Compositor *render.Compositor
	Logger     zerolog.Logger
}

func New() *Exporter {
	return &Exporter{Compositor: render.NewCompositor(), Logger: zerolog.Nop()}
}

// Write encodes s in format f.
func (e *Exporter) Write(w io.Writer, f Format, s *state.Surface, opts render.Options) error {
	switch f {
	case PDF:
		return e.WritePDF(w, s, opts)
	case SVG:
		return e.WriteSVG(w, s, opts)
	case PNG:
		return e.WritePNG(w, s, opts)
	}
	return errors.Errorf("export: unknown format %d", f)
}

// WriteFile exports s to path, choosing the format from its extension.
func (e *Exporter) WriteFile(path string, s *state.Surface, opts render.Options) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "export: create file")
	}
	if err := e.Write(out, f, s, opts); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, "export: close file")
	}
	e.Logger.Info().Str("Path", path).Stringer("Format", f).Msg("[EXPORT] surface exported")
	return nil
}

func fillPage(c render.Canvas, opts render.Options) {
	w, h := opts.Width, opts.Height
	c.FillPolygon([]geom.Point{geom.Pt(0, 0), geom.Pt(w, 0), geom.Pt(w, h), geom.Pt(0, h)}, render.PaperColor(opts.Scheme))
}
