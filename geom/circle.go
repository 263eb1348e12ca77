package geom

import "math"

// Circle is a full circle, used as the supporting geometry of arc edges.
type Circle struct {
	C Point
	R float64
}

// CircleOf returns the circle through center c with radius r.
func CircleOf(c Point, r float64) Circle {
	return Circle{C: c, R: r}
}

// SameAs reports whether the two circles coincide within CircleTolerance.
func (c Circle) SameAs(o Circle) bool {
	return c.C.CloseEnough(o.C, CircleTolerance) && math.Abs(c.R-o.R) < CircleTolerance
}

// OnBoundary reports whether p lies on the circle within tol.
func (c Circle) OnBoundary(p Point, tol float64) bool {
	return math.Abs(p.Distance(c.C)-c.R) < tol
}

// IntersectLineCircle intersects the infinite line through p0 and p1 with a
// circle. It returns zero, one (tangency), or two points. A line of
// near-zero length yields no intersections rather than dividing by a tiny
// denominator.
func IntersectLineCircle(p0, p1 Point, c Circle) []Point {
	d := p1.Sub(p0)
	lenSq := d.NormSquared()
	if lenSq < DivisionEpsilon*DivisionEpsilon {
		return nil
	}

	// Project the center onto the line and measure the perpendicular offset.
	t := c.C.Sub(p0).Dot(d) / lenSq
	foot := p0.Add(d.Scale(t))
	offset := foot.Distance(c.C)

	switch {
	case offset > c.R+GeometricEpsilon:
		return nil
	case offset > c.R-GeometricEpsilon:
		// Tangent line; the foot is the touching point.
		return []Point{foot}
	}

	half := math.Sqrt(math.Max(0, c.R*c.R-offset*offset))
	dir := d.Scale(1 / math.Sqrt(lenSq))
	return []Point{
		foot.Sub(dir.Scale(half)),
		foot.Add(dir.Scale(half)),
	}
}

// IntersectCircleCircle intersects two circle boundaries. Coincident circles
// report no points (the intersection is not a finite set), as do separated,
// contained, and concentric pairs.
func IntersectCircleCircle(a, b Circle) []Point {
	if a.SameAs(b) {
		return nil
	}
	ab := b.C.Sub(a.C)
	d := ab.Norm()
	if d < DivisionEpsilon {
		// Concentric with different radii.
		return nil
	}
	if d > a.R+b.R+GeometricEpsilon {
		return nil
	}
	if d < math.Abs(a.R-b.R)-GeometricEpsilon {
		return nil
	}

	// Radical line: x is the distance from a's center to the chord through
	// the intersection points, along the center line.
	x := (d*d + a.R*a.R - b.R*b.R) / (2 * d)
	ySq := a.R*a.R - x*x
	dir := ab.Scale(1 / d)
	foot := a.C.Add(dir.Scale(x))
	if ySq < GeometricEpsilon*GeometricEpsilon {
		// External or internal tangency.
		return []Point{foot}
	}
	y := math.Sqrt(ySq)
	perp := Point{X: -dir.Y, Y: dir.X}
	return []Point{
		foot.Add(perp.Scale(y)),
		foot.Sub(perp.Scale(y)),
	}
}
