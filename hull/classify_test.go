package hull

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-tools/archull/geom"
)

func TestClassifySquare(t *testing.T) {
	cls, err := Classify(squareBoundary())
	require.NoError(t, err)
	assert.Equal(t, []Convexity{Convex, Convex, Convex, Convex}, cls)
}

func TestClassifyNotch(t *testing.T) {
	// Square with the right side replaced by an inward-stored edge: the
	// edge runs CCW from (4,4) to (4,0), so the boundary travels it
	// backward.
	poly := geom.ArcPolygon{
		geom.NewSeg(geom.Pt(0, 0), geom.Pt(2, 0)),
		geom.NewSeg(geom.Pt(2, 0), geom.Pt(4, 0)),
		geom.NewSeg(geom.Pt(4, 4), geom.Pt(4, 0)),
		geom.NewSeg(geom.Pt(4, 4), geom.Pt(0, 4)),
		geom.NewSeg(geom.Pt(0, 4), geom.Pt(0, 0)),
	}
	cls, err := Classify(poly)
	require.NoError(t, err)
	assert.Equal(t, []Convexity{Convex, Convex, Concave, Convex, Convex}, cls)
}

func TestClassifySingleEdge(t *testing.T) {
	t.Run("full circle", func(t *testing.T) {
		poly := geom.ArcPolygon{
			geom.NewArc(geom.Pt(1, 0), geom.Pt(1, 0), geom.Pt(0, 0), 1),
		}
		cls, err := Classify(poly)
		require.NoError(t, err)
		assert.Equal(t, []Convexity{Convex}, cls)
	})
	t.Run("open segment", func(t *testing.T) {
		cls, err := Classify(geom.ArcPolygon{geom.NewSeg(geom.Pt(0, 0), geom.Pt(1, 0))})
		require.NoError(t, err)
		assert.Equal(t, []Convexity{Convex}, cls)
	})
}

func TestClassifyEmpty(t *testing.T) {
	cls, err := Classify(nil)
	require.NoError(t, err)
	assert.Nil(t, cls)
}

func TestClassifyMalformed(t *testing.T) {
	t.Run("open chain", func(t *testing.T) {
		poly := geom.ArcPolygon{
			geom.NewSeg(geom.Pt(0, 0), geom.Pt(1, 0)),
			geom.NewSeg(geom.Pt(5, 5), geom.Pt(6, 6)),
		}
		_, err := Classify(poly)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedBoundary))
	})
	t.Run("non-finite coordinate", func(t *testing.T) {
		poly := squareBoundary()
		poly[2].B.X = math.NaN()
		_, err := Classify(poly)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedBoundary))
		assert.Contains(t, err.Error(), "edge 2")
	})
	t.Run("no closure", func(t *testing.T) {
		poly := geom.ArcPolygon{
			geom.NewSeg(geom.Pt(0, 0), geom.Pt(1, 0)),
			geom.NewSeg(geom.Pt(1, 0), geom.Pt(1, 1)),
			geom.NewSeg(geom.Pt(1, 1), geom.Pt(0, 5)),
		}
		_, err := Classify(poly)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedBoundary))
	})
}

// Helpers

func squareBoundary() geom.ArcPolygon {
	return geom.ArcPolygon{
		geom.NewSeg(geom.Pt(0, 0), geom.Pt(4, 0)),
		geom.NewSeg(geom.Pt(4, 0), geom.Pt(4, 4)),
		geom.NewSeg(geom.Pt(4, 4), geom.Pt(0, 4)),
		geom.NewSeg(geom.Pt(0, 4), geom.Pt(0, 0)),
	}
}
