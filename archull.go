// A convex hull package for boundaries made of circular arcs and straight
// segments.
//
// This package takes a closed arc-polygon, which may be non-convex and may
// contain edges traversed backward (notches), and computes its convex hull:
// again a closed arc-polygon, made of surviving pieces of the input edges
// stitched together with tangent segments.
package archull

import (
	"github.com/arc-tools/archull/geom"
	"github.com/arc-tools/archull/hull"
)

type Point = geom.Point
type Edge = geom.Edge
type ArcPolygon = geom.ArcPolygon
type Option = hull.Option

// WithIndex routes the hull's candidate scans through a bounding box index.
// The result is identical with or without it.
var WithIndex = hull.WithIndex

// Sentinel causes for errors returned by ConvexHull, matched with errors.Is.
var (
	ErrMalformedBoundary = hull.ErrMalformedBoundary
	ErrIterationOverrun  = hull.ErrIterationOverrun
)

// ConvexHull computes the convex hull of a closed boundary of CCW circular
// arcs and straight segments.
//
// The boundary must chain: each edge begins, in travel order, at the
// previous edge's end, and the last edge closes back to the first. Edges the
// boundary travels backward are allowed, they form concave notches. The hull
// is traversed CCW with the interior on the left; input edges that survive
// keep their IDs, including arcs that come back trimmed. A boundary with no
// convex edge at all has an empty hull and no error.
func ConvexHull(poly ArcPolygon, opts ...Option) (result ArcPolygon, err error) {
	defer func() {
		recoveredErr := hull.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return hull.ConvexHull(poly, opts...), nil
}
