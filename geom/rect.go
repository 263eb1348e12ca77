package geom

import "math"

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyRect is the identity for Union: it contains nothing and unioning it
// with any rectangle yields that rectangle.
func EmptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// RectAround is the degenerate rectangle covering a single point.
func RectAround(p Point) Rect {
	return Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

func (r Rect) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

func (r Rect) Union(s Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, s.MinX),
		MinY: math.Min(r.MinY, s.MinY),
		MaxX: math.Max(r.MaxX, s.MaxX),
		MaxY: math.Max(r.MaxY, s.MaxY),
	}
}

// Expand grows the rectangle by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}

func (r Rect) Intersects(s Rect) bool {
	return r.MinX <= s.MaxX && r.MaxX >= s.MinX &&
		r.MinY <= s.MaxY && r.MaxY >= s.MinY
}

func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Diagonal is the length of the rectangle's diagonal, a convenient upper
// bound on the distance between any two points it contains.
func (r Rect) Diagonal() float64 {
	if r.IsEmpty() {
		return 0
	}
	return math.Hypot(r.Width(), r.Height())
}
