package export

import (
	"image/png"
	"io"

	"github.com/pkg/errors"

	"InkBoard/internal/render"
	"InkBoard/internal/state"
)

// WritePNG rasterizes s and encodes it as PNG.
func (e *Exporter) WritePNG(w io.Writer, s *state.Surface, opts render.Options) error {
	img := e.Compositor.RenderImage(s, opts)
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "export: encode png")
	}
	return nil
}
