package render

import (
	"InkBoard/internal/geom"
	"InkBoard/internal/state"
)

// Canvas is a drawing target in device pixels. The compositor only needs
// these four primitives, so the same frame can be rasterized, written to
// a PDF page or serialized as SVG.
type Canvas interface {
	FillPolygon(pts []geom.Point, c state.Color)
	StrokeRect(r geom.BoundingBox, width float64, c state.Color)
	FillCircle(center geom.Point, radius float64, c state.Color)
	StrokeLine(a, b geom.Point, width float64, c state.Color)
}
