package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InkBoard/internal/capture"
	"InkBoard/internal/geom"
	"InkBoard/internal/render"
	"InkBoard/internal/state"
)

func newBoard(t *testing.T) (*InkBoard, *state.Surface) {
	t.Helper()
	test.NewApp()
	s := state.NewSurface()
	c := capture.New(s, 0)
	c.SetDesktopMode(true)
	b := NewInkBoard(c, render.NewCompositor())
	b.Resize(fyne.NewSize(500, 400))
	return b, s
}

func press(b *InkBoard, x, y float32) {
	b.MouseDown(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}, Button: desktop.MouseButtonPrimary})
}

func drag(b *InkBoard, x, y float32) {
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}})
}

func release(b *InkBoard, x, y float32) {
	b.MouseUp(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}, Button: desktop.MouseButtonPrimary})
}

func TestInkBoardResize(t *testing.T) {
	b, s := newBoard(t)
	assert.Equal(t, 500.0, b.Capturer().Width())
	assert.Equal(t, 400.0, s.PanelHeight())
	assert.Equal(t, 500.0, b.RenderOptions().Width)
}

func TestInkBoardDrawSelectMove(t *testing.T) {
	b, s := newBoard(t)

	press(b, 10, 10)
	drag(b, 60, 10)
	release(b, 110, 10)
	require.Equal(t, 1, s.StrokeCount(state.Foreground))
	st := s.Strokes(state.Foreground)[0]
	require.Equal(t, 3, st.Len())
	assert.Equal(t, geom.Pt(20, 10), st.Samples[0].Point)
	assert.Equal(t, geom.Pt(220, 10), st.Samples[2].Point)

	b.Capturer().SetTool(state.ToolSelection)
	press(b, 5, 0)
	drag(b, 120, 20)
	release(b, 120, 20)
	require.True(t, s.IsHighlighted(st.ID))

	press(b, 50, 10)
	drag(b, 100, 110)
	release(b, 100, 110)
	moved := s.Strokes(state.Foreground)[0]
	assert.InDelta(t, 28, moved.Samples[0].Point.X, 1e-9)
	assert.InDelta(t, 20, moved.Samples[0].Point.Y, 1e-9)
	assert.Equal(t, 1, s.StrokeCount(state.Foreground))

	b.TappedSecondary(&fyne.PointEvent{})
	assert.Empty(t, s.Highlighted())
}

func TestInkBoardIgnoresSecondaryButton(t *testing.T) {
	b, s := newBoard(t)
	b.MouseDown(&desktop.MouseEvent{Button: desktop.MouseButtonSecondary})
	drag(b, 30, 30)
	assert.Equal(t, 0, s.ActiveLen())
}

func TestInkBoardRendersImage(t *testing.T) {
	b, _ := newBoard(t)
	img := b.draw(0, 0)
	assert.Equal(t, 500, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestBoardHideTracksSurface(t *testing.T) {
	b, s := newBoard(t)
	b.Hide()
	assert.False(t, s.Visible())
	b.Show()
	assert.True(t, s.Visible())
}
