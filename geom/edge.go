package geom

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Edge is one element of an arc-polygon boundary: either a circular arc or a
// straight segment. The two share a single representation so that boundary
// code does not branch on curvature; a radius of +Inf is the segment
// sentinel, and only tangency and trimming code ever looks at the circle
// fields.
//
// Arcs are always counter-clockwise around their own center. An edge that is
// conceptually traversed the other way (a concave boundary notch) is stored
// CCW with its endpoints swapped relative to travel order; see the hull
// package's classifier.
type Edge struct {
	// A and B are the start and end points of the edge.
	A, B Point
	// C is the circle center. For segments it is (+Inf, +Inf) by convention.
	C Point
	// R is the circle radius; +Inf marks a straight segment.
	R float64
	// ID is a non-unique identifier carried along through trimming, useful
	// for debugging and for telling which input edge a hull piece came from.
	ID int
}

// ArcPolygon is an ordered, cyclic sequence of edges forming a closed
// boundary.
type ArcPolygon []Edge

var edgeID int64

func nextEdgeID() int {
	return int(atomic.AddInt64(&edgeID, 1))
}

// NewArc returns a CCW circular arc from a to b around center c with radius r.
func NewArc(a, b, c Point, r float64) Edge {
	return Edge{A: a, B: b, C: c, R: r, ID: nextEdgeID()}
}

// NewSeg returns a straight segment from a to b, encoded as an edge of
// infinite radius.
func NewSeg(a, b Point) Edge {
	inf := math.Inf(1)
	return Edge{A: a, B: b, C: Point{X: inf, Y: inf}, R: inf, ID: nextEdgeID()}
}

func (e Edge) String() string {
	if e.IsSeg() {
		return fmt.Sprintf("seg[%s -> %s]", e.A, e.B)
	}
	return fmt.Sprintf("arc[%s -> %s @ %s r=%g]", e.A, e.B, e.C, e.R)
}

// IsSeg reports whether the edge is a straight segment.
func (e Edge) IsSeg() bool {
	return math.IsInf(e.R, 1)
}

// IsArc reports whether the edge is a genuine circular arc.
func (e Edge) IsArc() bool {
	return !e.IsSeg()
}

// Circle returns the supporting circle of an arc edge. ok is false for
// segments, which have no finite circle.
func (e Edge) Circle() (Circle, bool) {
	if e.IsSeg() {
		return Circle{}, false
	}
	return Circle{C: e.C, R: e.R}, true
}

// SameGeometry compares the two edges' geometry, ignoring IDs. Points must
// coincide within PointTolerance; radii within CircleTolerance.
func (e Edge) SameGeometry(o Edge) bool {
	if e.IsSeg() != o.IsSeg() {
		return false
	}
	if !e.A.CloseEnough(o.A, PointTolerance) || !e.B.CloseEnough(o.B, PointTolerance) {
		return false
	}
	if e.IsSeg() {
		return true
	}
	return e.C.CloseEnough(o.C, PointTolerance) && Equal(e.R, o.R)
}

// Contains reports whether p lies on the edge's sweep, assuming p is already
// on the supporting circle (or, for segments, on the supporting line): the
// caller is responsible for the radial check. For a CCW arc the sweep from A
// to B covers exactly the circle points q with orient(A, q, B) >= 0, which
// conveniently makes a full-circle arc (A == B) contain everything.
func (e Edge) Contains(p Point) bool {
	if e.IsSeg() {
		d := e.B.Sub(e.A)
		t := p.Sub(e.A).Dot(d)
		return t >= -GeometricEpsilon && t <= d.NormSquared()+GeometricEpsilon
	}
	return p.Sub(e.A).Perp(e.B.Sub(p)) >= -CollinearityTolerance
}

// StartAngle is the angle of A around the arc center.
func (e Edge) StartAngle() float64 {
	return math.Atan2(e.A.Y-e.C.Y, e.A.X-e.C.X)
}

// SweepTo is the CCW angular travel from A to the circle point p, in
// (0, 2*pi]. A full revolution, not zero, is reported when p coincides with
// A, which is what full-circle arcs need.
func (e Edge) SweepTo(p Point) float64 {
	a := math.Atan2(p.Y-e.C.Y, p.X-e.C.X) - e.StartAngle()
	for a <= AngularTolerance {
		a += 2 * math.Pi
	}
	for a > 2*math.Pi+AngularTolerance {
		a -= 2 * math.Pi
	}
	return a
}

// PointAt evaluates the edge at t in [0, 1] along its travel direction.
func (e Edge) PointAt(t float64) Point {
	if e.IsSeg() {
		return Point{
			X: e.A.X + (e.B.X-e.A.X)*t,
			Y: e.A.Y + (e.B.Y-e.A.Y)*t,
		}
	}
	ang := e.StartAngle() + t*e.SweepTo(e.B)
	return Point{
		X: e.C.X + e.R*math.Cos(ang),
		Y: e.C.Y + e.R*math.Sin(ang),
	}
}

// TangentAt is the unit CCW travel direction at the circle point p of an arc
// edge, or the segment direction for segments. ok is false for degenerate
// (zero length, zero radius) edges.
func (e Edge) TangentAt(p Point) (Point, bool) {
	if e.IsSeg() {
		return e.B.Sub(e.A).Normalize()
	}
	radial := p.Sub(e.C)
	return Point{X: -radial.Y, Y: radial.X}.Normalize()
}

// Bounds is the tight axis-aligned bounding box of the edge. For arcs the
// box covers both endpoints plus every cardinal point of the circle the
// sweep passes through.
func (e Edge) Bounds() Rect {
	box := RectAround(e.A).Union(RectAround(e.B))
	if e.IsSeg() {
		return box
	}
	cardinals := [4]Point{
		{X: e.C.X + e.R, Y: e.C.Y},
		{X: e.C.X, Y: e.C.Y + e.R},
		{X: e.C.X - e.R, Y: e.C.Y},
		{X: e.C.X, Y: e.C.Y - e.R},
	}
	for _, p := range cardinals {
		if e.Contains(p) {
			box = box.Union(RectAround(p))
		}
	}
	return box
}

// IsFinite reports whether the edge's coordinates are ordinary numbers. The
// segment sentinel (infinite radius with the conventional infinite center)
// is of course allowed.
func (e Edge) IsFinite() bool {
	if !e.A.IsFinite() || !e.B.IsFinite() {
		return false
	}
	if e.IsSeg() {
		return true
	}
	return e.C.IsFinite() && !math.IsNaN(e.R) && e.R > 0
}

// Bounds is the union of all edge bounding boxes.
func (ap ArcPolygon) Bounds() Rect {
	box := EmptyRect()
	for _, e := range ap {
		box = box.Union(e.Bounds())
	}
	return box
}
