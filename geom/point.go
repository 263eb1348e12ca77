package geom

import (
	"fmt"
	"math"
)

// Point is an immutable 2D coordinate. It doubles as a 2D vector; the
// boundary between the two uses is the usual informal one for planar
// geometry code.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Perp is the perp-dot product, the z component of the cross product of p
// and q. Positive means q is counter-clockwise from p.
func (p Point) Perp(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Norm is the euclidean length of p taken as a vector.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) NormSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Normalize returns the unit vector along p. The second result is false when
// the length is below DivisionEpsilon and no direction can be produced.
func (p Point) Normalize() (Point, bool) {
	n := p.Norm()
	if n < DivisionEpsilon {
		return Point{}, false
	}
	return Point{X: p.X / n, Y: p.Y / n}, true
}

func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// CloseEnough reports whether q is within tol of p in both coordinates'
// euclidean sense.
func (p Point) CloseEnough(q Point, tol float64) bool {
	return p.Distance(q) < tol
}

// IsFinite reports whether both coordinates are ordinary numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
