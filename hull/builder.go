package hull

import (
	"math"

	"github.com/arc-tools/archull/geom"
	"github.com/arc-tools/archull/spatial"
)

// walker carries the state of one wrapping run.
type walker struct {
	poly geom.ArcPolygon
	cls  []Convexity
	idx  *spatial.Index
	// scope is the query window handed to the index. It spans the whole
	// input, so the index changes the scan order but never the candidate
	// set; the hull is identical with and without it.
	scope geom.Rect

	out     []geom.Edge
	first   geom.Point // hull closes when the walk returns here
	cur     geom.Point
	prevDir geom.Point
	curEdge int // edge the walk is currently riding, -1 between edges
	last    int // most recent edge ridden, anchors the cyclic scan order
	entry   geom.Point
	rounds  int // when positive, overrides the closure round bound
}

// Wrap computes the convex hull of a classified boundary. The result is a
// closed CCW arc-polygon; it is empty when no edge is convex. Failures
// panic with a hullError, see HandleHullPanicRecover.
func (w *walker) Wrap() geom.ArcPolygon {
	seed, low, onCurve := w.lowestSupport()
	if seed < 0 {
		// Every edge concave: no convex support exists anywhere.
		return nil
	}
	w.first = low
	w.cur = low
	w.prevDir = geom.Pt(1, 0)
	w.curEdge = -1
	w.last = seed
	if onCurve || (w.cls[seed] == Convex &&
		low.CloseEnough(entryPoint(w.poly[seed], Convex), geom.PointTolerance)) {
		w.curEdge = seed
		w.entry = low
	}

	maxRounds := 3*len(w.poly) + 8
	if w.rounds > 0 {
		maxRounds = w.rounds
	}
	for round := 0; ; round++ {
		if round > maxRounds {
			fatalf(ErrIterationOverrun, "no closure after %d rounds at %s", round, w.cur)
		}
		var done bool
		if w.curEdge >= 0 && w.poly[w.curEdge].IsArc() {
			done = w.rollRound()
		} else {
			done = w.pivotRound()
		}
		if done {
			return w.out
		}
	}
}

// pivotRound pivots the supporting line around the current anchor point and
// either advances to a new support point or begins traveling the current
// segment. It reports true when the hull closes.
func (w *walker) pivotRound() bool {
	var cands []candidate
	if w.curEdge >= 0 {
		// Continuation along the segment we stand on.
		e := w.poly[w.curEdge]
		if dir, ok := e.TangentAt(w.cur); ok {
			cands = append(cands, candidate{
				edge: w.curEdge, point: e.B, dir: dir,
				turn:  leftTurn(w.prevDir, dir),
				reach: e.B.Sub(w.cur).Norm(),
				enter: true, cont: true,
			})
		}
	}
	for _, j := range w.scan() {
		if j == w.curEdge {
			continue
		}
		cands = w.pivotCandidates(j, cands)
	}
	if len(cands) == 0 {
		fatalf(ErrIterationOverrun, "no support candidate at %s", w.cur)
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if betterPivot(best, c) {
			best = c
		}
	}

	if best.cont {
		w.emitSegPiece(w.poly[w.curEdge], w.cur, best.point)
		w.curEdge = -1
		return w.arriveAt(best.point, best.dir)
	}

	// A pending segment whose continuation just lost never reaches the
	// hull: the walk only touched its start vertex. Drop it unemitted.
	moved := !best.point.CloseEnough(w.cur, geom.PointTolerance)
	if moved {
		w.emitConnector(w.cur, best.point)
	}
	if best.enter {
		w.curEdge = best.edge
		w.last = best.edge
		w.entry = best.point
	} else {
		w.curEdge = -1
	}
	if moved {
		return w.arriveAt(best.point, best.dir)
	}
	w.cur = best.point
	return false
}

// rollRound rolls the supporting line along the current arc's circle and
// either departs toward another edge, finishes the arc, or closes the hull.
func (w *walker) rollRound() bool {
	e := w.poly[w.curEdge]
	c, _ := e.Circle()
	posB := arcPos(c.C, w.entry, e.B, false)

	cands := []candidate{{
		edge: w.curEdge, point: e.B, depart: e.B,
		pos: posB, cont: true,
	}}
	if len(w.out) > 0 && c.OnBoundary(w.first, geom.CircleTolerance) && e.Contains(w.first) {
		if pos := arcPos(c.C, w.entry, w.first, false); pos <= posB+geom.AngularTolerance {
			cands = append(cands, candidate{
				edge: w.curEdge, point: w.first, depart: w.first,
				pos: pos, close: true,
			})
		}
	}
	for _, j := range w.scan() {
		if j == w.curEdge {
			continue
		}
		cands = w.rollCandidates(j, posB, cands)
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if betterRoll(best, c) {
			best = c
		}
	}

	switch {
	case best.close:
		w.emitArcPiece(e, w.entry, w.first, false)
		return true
	case best.cont:
		full := posB > 2*math.Pi-geom.AngularTolerance
		w.emitArcPiece(e, w.entry, e.B, full)
		w.curEdge = -1
		dir, ok := e.TangentAt(e.B)
		if !ok {
			dir = w.prevDir
		}
		return w.arriveAt(e.B, dir)
	default:
		w.emitArcPiece(e, w.entry, best.depart, false)
		if w.arriveAt(best.depart, w.prevDir) {
			return true
		}
		var dir geom.Point
		if conn, ok := best.point.Sub(best.depart).Normalize(); ok {
			w.emitConnector(best.depart, best.point)
			dir = conn
		} else if t, ok := w.poly[best.edge].TangentAt(best.point); ok {
			// Tangency without a gap: the circles touch.
			dir = t
		} else {
			dir = w.prevDir
		}
		if best.enter {
			w.curEdge = best.edge
			w.last = best.edge
			w.entry = best.point
		} else {
			w.curEdge = -1
		}
		return w.arriveAt(best.point, dir)
	}
}

// arriveAt moves the walk and reports whether it just closed the hull.
func (w *walker) arriveAt(p, dir geom.Point) bool {
	w.cur = p
	w.prevDir = dir
	return len(w.out) > 0 && p.CloseEnough(w.first, geom.PointTolerance)
}

// scan yields the edge indices to consider, in cyclic boundary order
// starting right after the edge the walk last rode. With an index attached
// the candidate set comes from a window query instead; the window covers the
// whole input, so the set is the same.
func (w *walker) scan() []int {
	n := len(w.poly)
	start := (w.last + 1) % n
	if w.idx == nil {
		order := make([]int, 0, n)
		for i := 0; i < n; i++ {
			order = append(order, (start+i)%n)
		}
		return order
	}
	hits := w.idx.Query(w.scope, nil)
	order := make([]int, 0, len(hits))
	for i := 0; i < n; i++ {
		j := (start + i) % n
		for _, h := range hits {
			if h == j {
				order = append(order, j)
				break
			}
		}
	}
	return order
}

// lowestSupport finds the seed: the bottom-most boundary point (ties broken
// leftward), which is guaranteed to be on the hull. Both endpoints of every
// edge count, concave ones included: a notch vertex shared by a convex edge
// and a backward-stored neighbor can sit below every convex start point.
// onCurve is true when the point is an arc's bottom cardinal rather than an
// edge endpoint. A boundary with no convex edge has no hull; seed is -1.
func (w *walker) lowestSupport() (int, geom.Point, bool) {
	anyConvex := false
	for _, c := range w.cls {
		if c == Convex {
			anyConvex = true
			break
		}
	}
	if !anyConvex {
		return -1, geom.Point{}, false
	}

	seed := -1
	var low geom.Point
	onCurve := false
	consider := func(j int, p geom.Point, curve bool) {
		if seed >= 0 {
			if p.Y > low.Y+geom.PointTolerance {
				return
			}
			if p.Y > low.Y-geom.PointTolerance && p.X >= low.X-geom.PointTolerance {
				return
			}
		}
		seed, low, onCurve = j, p, curve
	}
	for j, e := range w.poly {
		consider(j, e.A, false)
		consider(j, e.B, false)
		if w.cls[j] == Convex && e.IsArc() {
			bottom := geom.Pt(e.C.X, e.C.Y-e.R)
			if e.Contains(bottom) {
				consider(j, bottom, true)
			}
		}
	}
	return seed, low, onCurve
}

func (w *walker) emitConnector(from, to geom.Point) {
	if from.CloseEnough(to, geom.PointTolerance) {
		return
	}
	w.out = append(w.out, geom.NewSeg(from, to))
}

// emitSegPiece keeps the source edge's identity on the emitted run.
func (w *walker) emitSegPiece(e geom.Edge, from, to geom.Point) {
	if from.CloseEnough(to, geom.PointTolerance) {
		return
	}
	w.out = append(w.out, geom.Edge{A: from, B: to, C: e.C, R: e.R, ID: e.ID})
}

// emitArcPiece keeps the source arc's circle and identity. A collapsed
// piece is dropped unless the caller marks it as a deliberate full
// revolution.
func (w *walker) emitArcPiece(e geom.Edge, from, to geom.Point, full bool) {
	if !full && from.CloseEnough(to, geom.PointTolerance) {
		return
	}
	w.out = append(w.out, geom.Edge{A: from, B: to, C: e.C, R: e.R, ID: e.ID})
}
