package hull

import (
	"math"

	"github.com/arc-tools/archull/geom"
)

// Candidate scanning for the wrapping walk. The walk holds a supporting line
// against the boundary; from a point anchor the line pivots (smallest CCW
// turn wins), and while riding an arc it rolls around the circle (earliest
// CCW departure wins). Candidates always come from a scan over the whole
// boundary, never just the neighbors of the current edge, so disconnected
// lobes and deep notches cannot trap the walk.

type candidate struct {
	edge   int        // input edge index the candidate belongs to
	point  geom.Point // support point the walk moves to
	depart geom.Point // rolling only: where the walk leaves the current circle
	dir    geom.Point // unit travel direction toward point
	turn   float64    // pivoting: CCW angle from the previous direction, in [0, 2pi)
	pos    float64    // rolling: CCW sweep from the entry point to depart
	reach  float64    // tie-break: how far the move carries the walk
	enter  bool       // the walk steps onto the edge itself at point
	cont   bool       // continuation of the current edge to its own end
	close  bool       // rolling only: returns to the hull's first point
}

// leftTurn is the CCW angle from a to b, normalized to [0, 2*pi). Angles a
// hair below zero are numeric noise on a straight continuation and clamp to
// zero instead of wrapping to a full turn.
func leftTurn(a, b geom.Point) float64 {
	ang := math.Atan2(a.Perp(b), a.Dot(b))
	if ang < -geom.AngularTolerance {
		ang += 2 * math.Pi
	} else if ang < 0 {
		ang = 0
	}
	return ang
}

// arcPos is the CCW sweep around center from the direction of "from" to the
// direction of p, in [0, 2*pi) or, when allowZero is false, (0, 2*pi].
func arcPos(center, from, p geom.Point, allowZero bool) float64 {
	ang := math.Atan2(p.Y-center.Y, p.X-center.X) - math.Atan2(from.Y-center.Y, from.X-center.X)
	low := geom.AngularTolerance
	if allowZero {
		low = -geom.AngularTolerance
	}
	for ang <= low {
		ang += 2 * math.Pi
	}
	for ang > 2*math.Pi+low {
		ang -= 2 * math.Pi
	}
	if allowZero && ang < 0 {
		ang = 0
	}
	return ang
}

// betterPivot reports whether b beats a in pivot mode. Smaller turn wins;
// near-equal turns are collinear supports on one line, where the nearest
// point wins so the walk steps through every support in order and boundary
// runs lying on the line keep their identity. Remaining ties keep a (the
// continuation comes first, then cyclic boundary order).
func betterPivot(a, b candidate) bool {
	if b.turn < a.turn-geom.AngularTolerance {
		return true
	}
	if b.turn > a.turn+geom.AngularTolerance {
		return false
	}
	return b.reach < a.reach-geom.PointTolerance
}

// betterRoll is the rolling-mode ordering: earliest departure sweep wins.
// Near-equal sweeps are collinear supports on one tangent line; there the
// nearest candidate wins, so the walk steps through each support in order
// and input edges lying on the tangent keep their identity.
func betterRoll(a, b candidate) bool {
	if b.pos < a.pos-geom.AngularTolerance {
		return true
	}
	if b.pos > a.pos+geom.AngularTolerance {
		return false
	}
	return b.reach < a.reach-geom.PointTolerance
}

// pivotCandidates collects the support candidates for a point anchor: the
// entry of every convex edge (tangent point for arcs, start point for
// segments) and the bare endpoints of concave edges, which can still stick
// out as extreme vertices even though their curves never carry the hull.
func (w *walker) pivotCandidates(j int, cands []candidate) []candidate {
	e := w.poly[j]
	if w.cls[j] == Concave {
		cands = w.addPivotPoint(j, e.A, cands)
		cands = w.addPivotPoint(j, e.B, cands)
		return cands
	}
	if e.IsArc() {
		c, _ := e.Circle()
		if t, ok := approachTangent(w.cur, c); ok && e.Contains(t) {
			// Entering at the arc's own end is a dead end unless the arc is
			// a full circle.
			if !t.CloseEnough(e.B, geom.PointTolerance) || e.A.CloseEnough(e.B, geom.PointTolerance) {
				return w.addPivotEntry(j, t, cands)
			}
		}
		return w.addPivotEntry(j, e.A, cands)
	}
	return w.addPivotEntry(j, e.A, cands)
}

// addPivotEntry adds a candidate that steps onto edge j at p.
func (w *walker) addPivotEntry(j int, p geom.Point, cands []candidate) []candidate {
	e := w.poly[j]
	chord := p.Sub(w.cur)
	if dir, ok := chord.Normalize(); ok {
		return append(cands, candidate{
			edge: j, point: p, dir: dir,
			turn:  leftTurn(w.prevDir, dir),
			reach: chord.Norm(),
			enter: true,
		})
	}
	// Zero chord: the anchor already sits on the edge. Pivot onto the
	// edge's own travel direction; reach is how far the edge would carry us.
	dir, ok := e.TangentAt(p)
	if !ok {
		return cands
	}
	return append(cands, candidate{
		edge: j, point: p, dir: dir,
		turn:  leftTurn(w.prevDir, dir),
		reach: e.B.Sub(p).Norm(),
		enter: true,
	})
}

// addPivotPoint adds a bare vertex candidate: the walk moves to p but does
// not travel along edge j. A zero chord is dropped, there is no progress and
// nothing to pivot onto.
func (w *walker) addPivotPoint(j int, p geom.Point, cands []candidate) []candidate {
	chord := p.Sub(w.cur)
	dir, ok := chord.Normalize()
	if !ok {
		return cands
	}
	return append(cands, candidate{
		edge: j, point: p, dir: dir,
		turn:  leftTurn(w.prevDir, dir),
		reach: chord.Norm(),
	})
}

// rollCandidates collects departure candidates while riding the arc at
// w.curEdge, entered at w.entry. posB caps every departure: the supporting
// line cannot roll past the arc's own end.
func (w *walker) rollCandidates(j int, posB float64, cands []candidate) []candidate {
	cur := w.poly[w.curEdge]
	cc, _ := cur.Circle()
	e := w.poly[j]

	if w.cls[j] != Concave && e.IsArc() {
		tc, _ := e.Circle()
		if t0, t1, ok := externalTangent(cc, tc); ok && e.Contains(t1) && cur.Contains(t0) {
			pos := arcPos(cc.C, w.entry, t0, true)
			reach := t1.Sub(t0).Norm()
			if pos <= posB+geom.AngularTolerance && (pos > geom.AngularTolerance || reach > geom.PointTolerance) {
				return append(cands, candidate{
					edge: j, point: t1, depart: t0,
					pos: pos, reach: reach, enter: true,
				})
			}
		}
		return w.addRollTarget(j, e.A, true, posB, cands)
	}
	if w.cls[j] == Concave {
		cands = w.addRollTarget(j, e.A, false, posB, cands)
		cands = w.addRollTarget(j, e.B, false, posB, cands)
		return cands
	}
	return w.addRollTarget(j, e.A, true, posB, cands)
}

// addRollTarget adds a departure toward the fixed point p: leave the current
// circle at the tangent point aimed at p. Points inside the circle are
// unreachable before the arc's own end and are skipped.
func (w *walker) addRollTarget(j int, p geom.Point, enter bool, posB float64, cands []candidate) []candidate {
	cur := w.poly[w.curEdge]
	cc, _ := cur.Circle()
	t0, ok := departTangent(p, cc)
	if !ok || !cur.Contains(t0) {
		return cands
	}
	pos := arcPos(cc.C, w.entry, t0, true)
	reach := p.Sub(t0).Norm()
	if pos > posB+geom.AngularTolerance {
		return cands
	}
	if pos <= geom.AngularTolerance && reach <= geom.PointTolerance {
		// No progress at all.
		return cands
	}
	return append(cands, candidate{
		edge: j, point: p, depart: t0,
		pos: pos, reach: reach, enter: enter,
	})
}
