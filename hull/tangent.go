package hull

import (
	"math"

	"github.com/arc-tools/archull/geom"
)

// Tangent constructions. Everything here is algebraic (a tangent point t on
// circle c seen from p satisfies (t - c.C) . (t - p) = 0, which pins t at
// angle +-beta from the center-to-p direction with cos(beta) = r/d). No
// trig inverses, so no branch cuts to worry about.

// tangentPoints returns both tangent points on c as seen from an outside
// point. ok is false when from is inside or on the circle. The points come
// back in no particular order; callers pick a side.
func tangentPoints(from geom.Point, c geom.Circle) (geom.Point, geom.Point, bool) {
	d := from.Sub(c.C)
	dist := d.Norm()
	if dist <= c.R+geom.GeometricEpsilon {
		return geom.Point{}, geom.Point{}, false
	}
	u := d.Scale(1 / dist)
	cosb := c.R / dist
	sinb := math.Sqrt(math.Max(0, 1-cosb*cosb))
	w1 := geom.Point{X: u.X*cosb - u.Y*sinb, Y: u.X*sinb + u.Y*cosb}
	w2 := geom.Point{X: u.X*cosb + u.Y*sinb, Y: -u.X*sinb + u.Y*cosb}
	return c.C.Add(w1.Scale(c.R)), c.C.Add(w2.Scale(c.R)), true
}

// approachTangent is the tangent point t on c such that travel from "from"
// to t keeps the circle's center on the left. That is the tangent a CCW hull
// walk arrives on. A point sitting exactly on the circle is its own tangent
// point.
func approachTangent(from geom.Point, c geom.Circle) (geom.Point, bool) {
	if c.OnBoundary(from, geom.CircleTolerance) {
		return from, true
	}
	t1, t2, ok := tangentPoints(from, c)
	if !ok {
		return geom.Point{}, false
	}
	if t1.Sub(from).Perp(c.C.Sub(from)) > 0 {
		return t1, true
	}
	return t2, true
}

// departTangent is the tangent point t on c such that travel from t to
// target keeps the circle's center on the left. That is the tangent a CCW
// hull walk leaves on.
func departTangent(target geom.Point, c geom.Circle) (geom.Point, bool) {
	if c.OnBoundary(target, geom.CircleTolerance) {
		return target, true
	}
	t1, t2, ok := tangentPoints(target, c)
	if !ok {
		return geom.Point{}, false
	}
	if target.Sub(t1).Perp(c.C.Sub(t1)) > 0 {
		return t1, true
	}
	return t2, true
}

// externalTangent returns the common external tangent of two circles that
// keeps both centers on the left of travel from t0 (on a) to t1 (on b). Both
// tangent points share one unit normal w: t0 = a.C + a.R*w, t1 = b.C + b.R*w,
// with w.u = (a.R - b.R)/d for u the center-line direction. Of the two signs
// only one makes travel run forward along u with centers on the left, so
// there is nothing to disambiguate.
//
// ok is false for concentric circles and when one circle swallows the other,
// in which case there is no external tangent to speak of.
func externalTangent(a, b geom.Circle) (geom.Point, geom.Point, bool) {
	ab := b.C.Sub(a.C)
	d := ab.Norm()
	if d < geom.DivisionEpsilon {
		return geom.Point{}, geom.Point{}, false
	}
	cost := (a.R - b.R) / d
	if cost > 1-geom.DivisionEpsilon || cost < -1+geom.DivisionEpsilon {
		// One circle inside the other (or degenerately nested).
		return geom.Point{}, geom.Point{}, false
	}
	sint := math.Sqrt(math.Max(0, 1-cost*cost))
	u := ab.Scale(1 / d)
	// Rotate u clockwise by theta: the counter-clockwise sign would put the
	// tangent on the wrong side.
	w := geom.Point{X: u.X*cost + u.Y*sint, Y: -u.X*sint + u.Y*cost}
	return a.C.Add(w.Scale(a.R)), b.C.Add(w.Scale(b.R)), true
}
