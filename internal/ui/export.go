package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"InkBoard/internal/export"
)

// showExport asks for a destination and writes the board in format f.
func (a *App) showExport(f export.Format) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.win)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()

		opts := export.PageOptions(a.surface, a.board.RenderOptions().Width, a.board.scheme, a.board.paper)
		opts.Invert = a.board.invert
		if err := a.exporter.Write(w, f, a.surface, opts); err != nil {
			a.Logger.Error().Err(err).Str("URI", w.URI().String()).Msg("[UI] export failed")
			dialog.ShowError(err, a.win)
			return
		}
		a.Logger.Info().Str("URI", w.URI().String()).Stringer("Format", f).Msg("[UI] exported")
	}, a.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{f.Ext()}))
	d.SetFileName("drawing" + f.Ext())
	d.Show()
}
