package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"InkBoard/internal/state"
)

// swatches are the pen colors offered by the toolbar. Black ink turns
// white in the dark scheme; colored ink keeps its hue.
var swatches = []state.ColorPair{
	state.DefaultStyle().Color,
	{Light: state.Color{R: 0.85, G: 0.1, B: 0.1, A: 1}, Dark: state.Color{R: 1, G: 0.4, B: 0.4, A: 1}},
	{Light: state.Color{R: 0.1, G: 0.55, B: 0.2, A: 1}, Dark: state.Color{R: 0.4, G: 0.85, B: 0.45, A: 1}},
	{Light: state.Color{R: 0.1, G: 0.3, B: 0.85, A: 1}, Dark: state.Color{R: 0.45, G: 0.6, B: 1, A: 1}},
	{Light: state.Color{R: 0.95, G: 0.75, B: 0.1, A: 1}, Dark: state.Color{R: 1, G: 0.85, B: 0.3, A: 1}},
}

type colorSwatch struct {
	widget.BaseWidget
	Color    state.ColorPair
	OnTapped func(state.ColorPair)
}

func newColorSwatch(c state.ColorPair, tapped func(state.ColorPair)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color.Light.WithAlpha(1).NRGBA())
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the tool, layer and pen controls for one board.
type Toolbar struct {
	board  *InkBoard
	status *widget.Label
	size   *widget.Slider

	OnPenChanged    func(state.StrokeStyle)
	OnInvertChanged func(bool)
}

func NewToolbar(board *InkBoard) *Toolbar {
	return &Toolbar{board: board, status: widget.NewLabel("")}
}

func (t *Toolbar) setTool(tool state.Tool) {
	t.board.Capturer().SetTool(tool)
	t.board.raster.Refresh()
	t.updateStatus()
}

func (t *Toolbar) setPen(style state.StrokeStyle) {
	t.board.Capturer().SetPenStyle(style)
	if t.OnPenChanged != nil {
		t.OnPenChanged(t.board.Capturer().PenStyle())
	}
}

func (t *Toolbar) updateStatus() {
	s := t.board.surface
	t.status.SetText(fmt.Sprintf("%s | %s layer | %d strokes, %d selected",
		t.board.Capturer().Tool(), s.ActiveLayer(),
		s.StrokeCount(state.Foreground)+s.StrokeCount(state.Background), len(s.Highlighted())))
}

// Object builds the toolbar row.
func (t *Toolbar) Object() fyne.CanvasObject {
	c := t.board.Capturer()
	s := t.board.surface

	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() { t.setTool(state.ToolPen) }),
		widget.NewToolbarAction(theme.ZoomFitIcon(), func() { t.setTool(state.ToolSelection) }),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() { t.setTool(state.ToolEraser) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentCutIcon(), func() { s.EraseHighlighted() }),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { s.ClearLayer(s.ActiveLayer()) }),
	)

	layer := widget.NewCheck("Background", func(on bool) {
		if on {
			s.SetActiveLayer(state.Background)
		} else {
			s.SetActiveLayer(state.Foreground)
		}
	})
	layer.SetChecked(s.ActiveLayer() == state.Background)

	invert := widget.NewCheck("Invert", func(on bool) {
		c.SetInvertPenColors(on)
		if t.OnInvertChanged != nil {
			t.OnInvertChanged(on)
		}
	})
	invert.SetChecked(s.InvertPenColors())

	onColorTapped := func(p state.ColorPair) {
		style := c.PenStyle()
		style.Color = p
		t.setPen(style)
		if c.Tool() != state.ToolPen {
			t.setTool(state.ToolPen)
		}
	}
	colorBox := container.NewHBox()
	for _, p := range swatches {
		colorBox.Add(newColorSwatch(p, onColorTapped))
	}

	t.size = widget.NewSlider(state.MinSize, state.MaxSize)
	t.size.SetValue(c.PenStyle().Size)
	t.size.OnChangeEnded = func(val float64) {
		style := c.PenStyle()
		style.Size = val
		t.setPen(style)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.size)

	s.Subscribe(func(ch state.Change) {
		if ch.Kind != state.ChangeActive {
			t.updateStatus()
		}
	})
	t.updateStatus()

	return container.NewVBox(
		container.NewHBox(
			tools,
			widget.NewSeparator(),
			layer,
			invert,
			widget.NewSeparator(),
			colorBox,
			widget.NewSeparator(),
			widget.NewLabel("Size:"),
			sliderContainer,
			layout.NewSpacer(),
		),
		t.status,
	)
}
