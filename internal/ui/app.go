package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"InkBoard/internal/capture"
	"InkBoard/internal/config"
	"InkBoard/internal/export"
	"InkBoard/internal/render"
	"InkBoard/internal/state"
	"InkBoard/internal/store"
)

const saveDelay = 2 * time.Second

// App is the desktop window around one surface.
type App struct {
	fyne     fyne.App
	win      fyne.Window
	conf     *config.Config
	confPath string
	surface  *state.Surface
	file     *store.File
	exporter *export.Exporter
	board    *InkBoard
	toolbar  *Toolbar

	saveTimer *time.Timer
	Logger    zerolog.Logger
}

// Options wires an App to its collaborators. File may be nil to disable
// saving. An empty ConfigPath saves settings to the user config directory.
type Options struct {
	Config     *config.Config
	ConfigPath string
	Surface    *state.Surface
	File       *store.File
	ShareURL   string
	Logger     zerolog.Logger
}

func NewApp(opts Options) *App {
	a := &App{
		fyne:     app.NewWithID("io.inkboard.app"),
		conf:     opts.Config,
		confPath: opts.ConfigPath,
		surface:  opts.Surface,
		file:     opts.File,
		exporter: export.New(),
		Logger:   opts.Logger,
	}
	a.exporter.Logger = opts.Logger
	a.conf.ApplyAppConfig(a.fyne)

	c := capture.New(a.surface, 0)
	c.Logger = opts.Logger
	c.SetPenStyle(a.conf.Pen)
	c.SetDesktopMode(a.conf.DesktopMode)
	c.SetInvertPenColors(a.conf.Invert)

	compositor := render.NewCompositor()
	compositor.Logger = opts.Logger
	a.board = NewInkBoard(c, compositor)
	a.board.Logger = opts.Logger
	a.board.SetPaper(a.conf.Paper)
	a.board.SetScheme(a.scheme())

	a.toolbar = NewToolbar(a.board)
	a.toolbar.OnPenChanged = func(style state.StrokeStyle) {
		a.conf.Pen = style
		a.saveConfig()
	}
	a.toolbar.OnInvertChanged = func(on bool) {
		a.conf.Invert = on
		a.saveConfig()
	}

	title := "InkBoard"
	if opts.ShareURL != "" {
		title += " (sharing on " + opts.ShareURL + ")"
	}
	a.win = a.fyne.NewWindow(title)
	a.win.Resize(fyne.NewSize(1024, 768))
	a.win.SetMainMenu(a.menu())
	a.win.SetContent(container.NewBorder(a.toolbar.Object(), nil, nil, nil, a.board))
	a.win.SetCloseIntercept(func() {
		a.save()
		a.win.Close()
	})

	a.surface.Subscribe(func(ch state.Change) {
		if ch.Kind != state.ChangeActive {
			a.scheduleSave()
		}
	})
	settings := make(chan fyne.Settings, 1)
	a.fyne.Settings().AddChangeListener(settings)
	go func() {
		for range settings {
			fyne.Do(func() { a.board.SetScheme(a.scheme()) })
		}
	}()
	return a
}

func (a *App) scheme() state.ColorScheme {
	system := state.Light
	if a.fyne.Settings().ThemeVariant() == theme.VariantDark {
		system = state.Dark
	}
	return a.conf.Scheme(system)
}

func (a *App) menu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Save", a.save),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Export PDF...", func() { a.showExport(export.PDF) }),
			fyne.NewMenuItem("Export SVG...", func() { a.showExport(export.SVG) }),
			fyne.NewMenuItem("Export PNG...", func() { a.showExport(export.PNG) }),
		),
		fyne.NewMenu("View",
			fyne.NewMenuItem("Toggle Paper", func() { a.board.SetPaper(!a.board.paper) }),
			fyne.NewMenuItem("Invert Display", func() { a.board.SetInvert(!a.board.invert) }),
		),
		fyne.NewMenu("Edit",
			fyne.NewMenuItem("Erase Selection", func() { a.surface.EraseHighlighted() }),
			fyne.NewMenuItem("Clear Selection", a.surface.ClearHighlights),
			fyne.NewMenuItem("Clear Layer", func() {
				dialog.ShowConfirm("Clear layer", "Remove every stroke on the "+a.surface.ActiveLayer().String()+" layer?",
					func(ok bool) {
						if ok {
							a.surface.ClearLayer(a.surface.ActiveLayer())
						}
					}, a.win)
			}),
		),
	)
}

// scheduleSave debounces autosave. The timer fires on its own goroutine,
// so the save itself is handed back to the UI goroutine.
func (a *App) scheduleSave() {
	if a.file == nil {
		return
	}
	if a.saveTimer != nil {
		a.saveTimer.Stop()
	}
	a.saveTimer = time.AfterFunc(saveDelay, func() {
		fyne.Do(a.save)
	})
}

func (a *App) save() {
	if a.file == nil {
		return
	}
	if err := a.file.Save(a.surface); err != nil {
		a.Logger.Error().Err(err).Msg("[UI] save failed")
		dialog.ShowError(err, a.win)
	}
}

func (a *App) saveConfig() {
	var err error
	if a.confPath != "" {
		err = a.conf.Save(a.confPath)
	} else {
		err = a.conf.SaveAppConfig()
	}
	if err != nil {
		a.Logger.Warn().Err(err).Msg("[UI] config not saved")
	}
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	a.win.ShowAndRun()
}
