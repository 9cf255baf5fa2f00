package render

import (
	"InkBoard/internal/geom"
	"InkBoard/internal/state"
)

const (
	// GridSpacing is the distance between paper grid lines in pixels.
	GridSpacing = 50.0
	// MarginInset is how far above the bottom edge the margin line sits.
	MarginInset = 50.0
)

var (
	gridLight   = state.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.15}
	gridDark    = state.Color{R: 0.7, G: 0.7, B: 0.7, A: 0.12}
	marginLight = state.Color{R: 0.9, G: 0.3, B: 0.3, A: 0.4}
	marginDark  = state.Color{R: 1, G: 0.45, B: 0.45, A: 0.35}
)

// PaperColor is the page background for scheme.
func PaperColor(scheme state.ColorScheme) state.Color {
	if scheme == state.Dark {
		return state.Color{R: 0.11, G: 0.11, B: 0.12, A: 1}
	}
	return state.Color{R: 1, G: 1, B: 1, A: 1}
}

// DrawPaper rules a grid every GridSpacing pixels and a margin line near
// the bottom of the page.
func DrawPaper(dst Canvas, width, height float64, scheme state.ColorScheme) {
	grid, margin := gridLight, marginLight
	if scheme == state.Dark {
		grid, margin = gridDark, marginDark
	}
	for x := GridSpacing; x < width; x += GridSpacing {
		dst.StrokeLine(geom.Pt(x, 0), geom.Pt(x, height), 1, grid)
	}
	for y := GridSpacing; y < height; y += GridSpacing {
		dst.StrokeLine(geom.Pt(0, y), geom.Pt(width, y), 1, grid)
	}
	if height > MarginInset {
		y := height - MarginInset
		dst.StrokeLine(geom.Pt(0, y), geom.Pt(width, y), 1, margin)
	}
}
