// Package geom holds the small amount of plane geometry shared by the ink
// engine: points, bounding boxes and the device/logical coordinate mapping.
package geom

import "math"

// Point is a position in logical space. X runs 0..LogicalWidth across the
// drawing surface, Y is stored at 1:1 pixel scale.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

func (p Point) Div(k float64) Point { return Point{p.X / k, p.Y / k} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Len returns the length of p taken as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// Dist2 returns the squared distance between p and q.
func (p Point) Dist2(q Point) float64 {
	dx, dy := q.X-p.X, q.Y-p.Y
	return dx*dx + dy*dy
}

// Lerp interpolates from p toward q by t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Angle returns atan2 of p taken as a vector.
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// Offset moves p by distance along the direction radians.
func (p Point) Offset(distance, radians float64) Point {
	return Point{p.X + distance*math.Cos(radians), p.Y + distance*math.Sin(radians)}
}
