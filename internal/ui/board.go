package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"InkBoard/internal/capture"
	"InkBoard/internal/geom"
	"InkBoard/internal/render"
	"InkBoard/internal/state"
)

// InkBoard displays a surface and feeds pointer input into it.
//
// The primary button draws with the current tool. With the selection tool,
// pressing inside the selection box drags the selection instead. A
// secondary click dismisses the lasso and the selection.
type InkBoard struct {
	widget.BaseWidget

	surface    *state.Surface
	capture    *capture.Capturer
	compositor *render.Compositor
	raster     *canvas.Raster

	scheme state.ColorScheme
	invert bool
	paper  bool

	moving  bool
	pressed bool

	Logger zerolog.Logger
}

var _ fyne.Widget = (*InkBoard)(nil)
var _ fyne.Draggable = (*InkBoard)(nil)
var _ desktop.Mouseable = (*InkBoard)(nil)
var _ fyne.SecondaryTappable = (*InkBoard)(nil)

func NewInkBoard(c *capture.Capturer, compositor *render.Compositor) *InkBoard {
	b := &InkBoard{
		surface:    c.Surface(),
		capture:    c,
		compositor: compositor,
		paper:      true,
		Logger:     zerolog.Nop(),
	}
	b.raster = canvas.NewRaster(b.draw)
	b.surface.Subscribe(func(state.Change) { b.raster.Refresh() })
	b.ExtendBaseWidget(b)
	return b
}

func (b *InkBoard) Capturer() *capture.Capturer { return b.capture }

func (b *InkBoard) SetScheme(s state.ColorScheme) {
	b.scheme = s
	b.raster.Refresh()
}

func (b *InkBoard) SetInvert(on bool) {
	b.invert = on
	b.raster.Refresh()
}

func (b *InkBoard) SetPaper(on bool) {
	b.paper = on
	b.raster.Refresh()
}

// RenderOptions describes the frame currently on screen.
func (b *InkBoard) RenderOptions() render.Options {
	size := b.Size()
	return render.Options{
		Width:  float64(size.Width),
		Height: float64(size.Height),
		Scheme: b.scheme,
		Invert: b.invert,
		Tool:   b.capture.Tool(),
		Paper:  b.paper,
	}
}

// draw renders at widget size; fyne scales the image to the pixel size.
func (b *InkBoard) draw(_, _ int) image.Image {
	return b.compositor.RenderImage(b.surface, b.RenderOptions())
}

func (b *InkBoard) Resize(size fyne.Size) {
	b.capture.Resize(float64(size.Width))
	b.surface.SetPanelHeight(float64(size.Height))
	b.BaseWidget.Resize(size)
}

func (b *InkBoard) Show() {
	b.surface.SetVisible(true)
	b.BaseWidget.Show()
}

func (b *InkBoard) Hide() {
	b.surface.SetVisible(false)
	b.BaseWidget.Hide()
}

func (b *InkBoard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.raster)
}

func (b *InkBoard) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func point(pos fyne.Position) capture.RawPoint {
	return capture.At(float64(pos.X), float64(pos.Y), capture.DeviceMouse)
}

func (b *InkBoard) insideSelection(pos fyne.Position) bool {
	box, ok := b.surface.HighlightBoundingBox()
	if !ok {
		return false
	}
	n := geom.Normalizer{Width: float64(b.Size().Width)}
	return n.BoxToDevice(box).Pad(render.MarkerRadius).Contains(geom.Pt(float64(pos.X), float64(pos.Y)))
}

func (b *InkBoard) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pressed = true
	if b.capture.Tool() == state.ToolSelection && b.insideSelection(e.Position) {
		b.moving = true
		return
	}
	b.capture.Begin(point(e.Position))
}

func (b *InkBoard) Dragged(e *fyne.DragEvent) {
	if !b.pressed {
		return
	}
	if b.moving {
		n := geom.Normalizer{Width: float64(b.Size().Width)}
		b.surface.DragTransform(n.PointToLogical(geom.Pt(float64(e.Position.X), float64(e.Position.Y))))
		return
	}
	b.capture.Move(point(e.Position))
}

func (b *InkBoard) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !b.pressed {
		return
	}
	b.pressed = false
	if b.moving {
		b.moving = false
		return
	}
	res := b.capture.End(point(e.Position))
	b.Logger.Debug().Stringer("Tool", res.Tool).Bool("Committed", res.Committed).
		Int("Erased", res.Erased).Msg("[UI] gesture finished")
}

func (b *InkBoard) DragEnd() {}

func (b *InkBoard) TappedSecondary(*fyne.PointEvent) {
	b.capture.Tap()
}
