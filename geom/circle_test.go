package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectLineCircle(t *testing.T) {
	c := CircleOf(Pt(0, 0), 1)

	t.Run("secant", func(t *testing.T) {
		pts := IntersectLineCircle(Pt(-2, 0), Pt(2, 0), c)
		require.Len(t, pts, 2)
		assert.True(t, pts[0].CloseEnough(Pt(-1, 0), 1e-9))
		assert.True(t, pts[1].CloseEnough(Pt(1, 0), 1e-9))
	})
	t.Run("tangent", func(t *testing.T) {
		pts := IntersectLineCircle(Pt(-2, 1), Pt(2, 1), c)
		require.Len(t, pts, 1)
		assert.True(t, pts[0].CloseEnough(Pt(0, 1), 1e-9))
	})
	t.Run("miss", func(t *testing.T) {
		assert.Empty(t, IntersectLineCircle(Pt(-2, 2), Pt(2, 2), c))
	})
	t.Run("degenerate line", func(t *testing.T) {
		assert.Empty(t, IntersectLineCircle(Pt(0.5, 0), Pt(0.5, 0), c))
	})
	t.Run("short but valid chord", func(t *testing.T) {
		// The defining points are 2e-8 apart; only a truly zero-length
		// pair counts as degenerate.
		pts := IntersectLineCircle(Pt(-1e-8, 0), Pt(1e-8, 0), c)
		require.Len(t, pts, 2)
		assert.True(t, pts[0].CloseEnough(Pt(-1, 0), 1e-9))
		assert.True(t, pts[1].CloseEnough(Pt(1, 0), 1e-9))
	})
}

func TestIntersectCircleCircle(t *testing.T) {
	t.Run("two points", func(t *testing.T) {
		pts := IntersectCircleCircle(CircleOf(Pt(0, 0), 1), CircleOf(Pt(1, 0), 1))
		require.Len(t, pts, 2)
		for _, p := range pts {
			assert.InDelta(t, 0.5, p.X, 1e-9)
			assert.InDelta(t, 1.0, p.Distance(Pt(0, 0)), 1e-9)
		}
	})
	t.Run("external tangency", func(t *testing.T) {
		pts := IntersectCircleCircle(CircleOf(Pt(0, 0), 1), CircleOf(Pt(3, 0), 2))
		require.Len(t, pts, 1)
		assert.True(t, pts[0].CloseEnough(Pt(1, 0), 1e-9))
	})
	t.Run("separated", func(t *testing.T) {
		assert.Empty(t, IntersectCircleCircle(CircleOf(Pt(0, 0), 1), CircleOf(Pt(5, 0), 1)))
	})
	t.Run("contained", func(t *testing.T) {
		assert.Empty(t, IntersectCircleCircle(CircleOf(Pt(0, 0), 3), CircleOf(Pt(0.5, 0), 1)))
	})
	t.Run("coincident", func(t *testing.T) {
		assert.Empty(t, IntersectCircleCircle(CircleOf(Pt(0, 0), 2), CircleOf(Pt(0, 0), 2)))
	})
}
