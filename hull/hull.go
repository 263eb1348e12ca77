// Package hull computes the convex hull of closed boundaries built from
// counter-clockwise circular arcs and straight segments. The result is
// again such a boundary: surviving pieces of input edges, stitched together
// with tangent connector segments.
//
// Functions in this package panic with internal errors; wrap calls with
// HandleHullPanicRecover, or use the root package which does it for you.
package hull

import (
	"github.com/arc-tools/archull/geom"
	"github.com/arc-tools/archull/spatial"
)

type config struct {
	indexed bool
}

// Option tweaks how the hull is computed, never what it is.
type Option func(*config)

// WithIndex routes candidate scans through a packed bounding box index. The
// hull is identical either way.
func WithIndex() Option {
	return func(c *config) {
		c.indexed = true
	}
}

// ConvexHull wraps a supporting line around the boundary and returns the
// closed CCW hull. An empty input, or one with no convex edge at all,
// yields an empty hull. Malformed input panics with an error wrapping
// ErrMalformedBoundary.
//
// Edges of the input that survive onto the hull keep their IDs, including
// arcs that come back trimmed; connector segments get fresh IDs.
func ConvexHull(poly geom.ArcPolygon, opts ...Option) geom.ArcPolygon {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	cls, err := Classify(poly)
	if err != nil {
		fatal(err)
	}
	if len(poly) == 0 {
		return nil
	}

	w := &walker{poly: poly, cls: cls}
	if cfg.indexed {
		idx := spatial.NewIndex()
		for _, e := range poly {
			idx.Insert(e.Bounds())
		}
		idx.Build()
		bounds := poly.Bounds()
		w.idx = idx
		w.scope = bounds.Expand(bounds.Diagonal() + 1)
	}
	return w.Wrap()
}

// Validate checks the structural preconditions without computing anything:
// finite coordinates, endpoint chaining, closure. It returns nil for inputs
// ConvexHull accepts.
func Validate(poly geom.ArcPolygon) error {
	_, err := Classify(poly)
	return err
}
