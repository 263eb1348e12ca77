package hull

import (
	"github.com/pkg/errors"

	"github.com/arc-tools/archull/geom"
)

// Convexity labels how the boundary walk traverses a stored edge. Edges are
// always stored CCW around their own geometry; a Concave edge is one the
// boundary actually travels backward, from B to A, forming a notch whose
// material lies outside the edge's own curvature.
type Convexity int

const (
	Concave Convexity = iota
	Convex
)

func (c Convexity) String() string {
	if c == Convex {
		return "convex"
	}
	return "concave"
}

// entryPoint is where the boundary walk steps onto the edge.
func entryPoint(e geom.Edge, c Convexity) geom.Point {
	if c == Convex {
		return e.A
	}
	return e.B
}

// exitPoint is where the boundary walk leaves the edge.
func exitPoint(e geom.Edge, c Convexity) geom.Point {
	if c == Convex {
		return e.B
	}
	return e.A
}

// Classify walks the boundary once and labels every edge Convex or Concave
// by chaining shared endpoints: each edge must begin, in travel order, at
// the previous edge's exit point. A boundary that fails to chain or fails to
// close yields an error wrapping ErrMalformedBoundary and no labels.
//
// An empty boundary classifies to nil. A single edge is always Convex, open
// or not.
func Classify(poly geom.ArcPolygon) ([]Convexity, error) {
	n := len(poly)
	if n == 0 {
		return nil, nil
	}
	for i, e := range poly {
		if !e.IsFinite() {
			return nil, errors.Wrapf(ErrMalformedBoundary, "edge %d has a non-finite coordinate", i)
		}
	}
	if n == 1 {
		// One edge has no neighbor to chain against. It is always Convex;
		// the hull walk closes it with a chord when it is not a full circle.
		return []Convexity{Convex}, nil
	}

	out := make([]Convexity, n)

	// Seed the first edge from whichever of its endpoints the last edge
	// reaches. The closure check at the end catches a wrong guess when both
	// endpoints happen to match.
	prev := poly[n-1]
	switch {
	case prev.A.CloseEnough(poly[0].A, geom.PointTolerance) ||
		prev.B.CloseEnough(poly[0].A, geom.PointTolerance):
		out[0] = Convex
	case prev.A.CloseEnough(poly[0].B, geom.PointTolerance) ||
		prev.B.CloseEnough(poly[0].B, geom.PointTolerance):
		out[0] = Concave
	default:
		return nil, errors.Wrapf(ErrMalformedBoundary, "edges %d and 0 share no endpoint", n-1)
	}

	for i := 1; i < n; i++ {
		exit := exitPoint(poly[i-1], out[i-1])
		switch {
		case exit.CloseEnough(poly[i].A, geom.PointTolerance):
			out[i] = Convex
		case exit.CloseEnough(poly[i].B, geom.PointTolerance):
			out[i] = Concave
		default:
			return nil, errors.Wrapf(ErrMalformedBoundary, "edge %d does not continue from edge %d", i, i-1)
		}
	}

	if !exitPoint(poly[n-1], out[n-1]).CloseEnough(entryPoint(poly[0], out[0]), geom.PointTolerance) {
		return nil, errors.Wrapf(ErrMalformedBoundary, "boundary does not close between edge %d and edge 0", n-1)
	}
	return out, nil
}
