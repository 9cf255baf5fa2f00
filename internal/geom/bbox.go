package geom

import "math"

// BoundingBox is an axis aligned rectangle in logical units. All edges are
// inclusive.
type BoundingBox struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Box builds a BoundingBox from two corners in any order.
func Box(x0, y0, x1, y1 float64) BoundingBox {
	return BoundingBox{
		MinX: math.Min(x0, x1),
		MinY: math.Min(y0, y1),
		MaxX: math.Max(x0, x1),
		MaxY: math.Max(y0, y1),
	}
}

// Bounds returns the box enclosing pts. ok is false when pts is empty.
func Bounds(pts []Point) (b BoundingBox, ok bool) {
	if len(pts) == 0 {
		return BoundingBox{}, false
	}
	b = BoundingBox{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b = b.Extend(p)
	}
	return b, true
}

// Extend grows b so it also covers p.
func (b BoundingBox) Extend(p Point) BoundingBox {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

// Union returns the smallest box covering both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Contains is inclusive on every edge.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Overlaps reports whether the two boxes share at least one point.
func (b BoundingBox) Overlaps(o BoundingBox) bool {
	return !(b.MaxX < o.MinX || o.MaxX < b.MinX || b.MaxY < o.MinY || o.MaxY < b.MinY)
}

func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

func (b BoundingBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Pad grows the box by d on every side.
func (b BoundingBox) Pad(d float64) BoundingBox {
	return BoundingBox{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}
