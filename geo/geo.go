// Package geo provides the small set of coordinate and curve primitives the
// layout engine needs: points, vectors, and quadratic Bézier helpers.
package geo

import "math"

// Point is a location in layout space.
type Point struct {
	X float64
	Y float64
}

// NewPoint returns a Point at (x, y).
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// Copy returns a new Point with the same coordinates.
func (p *Point) Copy() *Point {
	return &Point{X: p.X, Y: p.Y}
}

// Equals reports whether p and other have identical coordinates.
func (p *Point) Equals(other *Point) bool {
	if p == nil {
		return other == nil
	} else if other == nil {
		return false
	}
	return p.X == other.X && p.Y == other.Y
}

// Interpolate returns the point t of the way from p to other, t in [0, 1].
func (p *Point) Interpolate(other *Point, t float64) *Point {
	return &Point{
		X: p.X*(1-t) + other.X*t,
		Y: p.Y*(1-t) + other.Y*t,
	}
}

// VectorTo returns the vector pointing from p to other.
func (p *Point) VectorTo(other *Point) Vector {
	return Vector{X: other.X - p.X, Y: other.Y - p.Y}
}

// AddVector returns the point reached by moving p by v.
func (p *Point) AddVector(v Vector) *Point {
	return &Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vector is a displacement in layout space.
type Vector struct {
	X float64
	Y float64
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Multiply scales v by s.
func (v Vector) Multiply(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// QuadraticBezierPointAt returns the point at t (t in [0,1]) along the
// quadratic Bézier curve defined by control points p0, p1, p2.
func QuadraticBezierPointAt(p0, p1, p2 *Point, t float64) *Point {
	u := 1 - t
	x := u*u*p0.X + 2*u*t*p1.X + t*t*p2.X
	y := u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y
	return &Point{X: x, Y: y}
}
