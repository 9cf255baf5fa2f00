package geom

// LogicalWidth is the fixed horizontal extent of every drawing surface.
const LogicalWidth = 1000.0

// ToLogical maps deviceX from [0, deviceWidth] onto [0, LogicalWidth].
// A zero deviceWidth is invalid input; the value is returned unchanged.
func ToLogical(deviceX, deviceWidth float64) float64 {
	if deviceWidth == 0 {
		return deviceX
	}
	return deviceX * LogicalWidth / deviceWidth
}

// ToDevice is the inverse of ToLogical.
func ToDevice(logicalX, deviceWidth float64) float64 {
	if deviceWidth == 0 {
		return logicalX
	}
	return logicalX * deviceWidth / LogicalWidth
}

// Normalizer binds the mapping to one surface width. Only X is scaled;
// Y passes through at pixel scale because panel height varies per drawing.
type Normalizer struct {
	Width float64
}

func (n Normalizer) PointToLogical(p Point) Point {
	return Point{X: ToLogical(p.X, n.Width), Y: p.Y}
}

func (n Normalizer) PointToDevice(p Point) Point {
	return Point{X: ToDevice(p.X, n.Width), Y: p.Y}
}

// PointsToDevice maps a whole polygon into device space.
func (n Normalizer) PointsToDevice(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = n.PointToDevice(p)
	}
	return out
}

func (n Normalizer) BoxToDevice(b BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: ToDevice(b.MinX, n.Width),
		MinY: b.MinY,
		MaxX: ToDevice(b.MaxX, n.Width),
		MaxY: b.MaxY,
	}
}
