package spatial

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-tools/archull/geom"
)

func TestEmptyIndex(t *testing.T) {
	x := NewIndex()
	x.Build()
	assert.Empty(t, x.Query(geom.Rect{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}, nil))
	assert.Equal(t, 0, x.Len())
}

func TestQueryBeforeBuild(t *testing.T) {
	x := NewIndex()
	x.Insert(geom.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1})
	assert.Empty(t, x.Query(geom.Rect{MinX: -1, MinY: -1, MaxX: 2, MaxY: 2}, nil))
}

func TestInsertIDsAreOrdinals(t *testing.T) {
	x := NewIndex()
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, x.Insert(geom.Rect{MaxX: float64(i), MaxY: 1}))
	}
	assert.Equal(t, 5, x.Len())
}

func TestQueryMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	x := NewIndex()
	boxes := make([]geom.Rect, 0, 300)
	for i := 0; i < 300; i++ {
		cx := rng.Float64() * 100
		cy := rng.Float64() * 100
		w := rng.Float64() * 5
		h := rng.Float64() * 5
		box := geom.Rect{MinX: cx, MinY: cy, MaxX: cx + w, MaxY: cy + h}
		boxes = append(boxes, box)
		x.Insert(box)
	}
	x.Build()

	windows := []geom.Rect{
		{MinX: 10, MinY: 10, MaxX: 30, MaxY: 30},
		{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
		{MinX: 95, MinY: 95, MaxX: 99, MaxY: 99},
		{MinX: -50, MinY: -50, MaxX: -10, MaxY: -10},
	}
	for _, win := range windows {
		var want []int
		for id, box := range boxes {
			if box.Intersects(win) {
				want = append(want, id)
			}
		}
		got := x.Query(win, nil)
		sort.Ints(got)
		assert.Equal(t, want, got)
	}
}

func TestWholeBoundsQueryReturnsEverything(t *testing.T) {
	x := NewIndex()
	total := geom.EmptyRect()
	for i := 0; i < 40; i++ {
		box := geom.Rect{
			MinX: float64(i), MinY: float64(i % 7),
			MaxX: float64(i) + 1, MaxY: float64(i%7) + 2,
		}
		total = total.Union(box)
		x.Insert(box)
	}
	x.Build()
	got := x.Query(total.Expand(total.Diagonal()), nil)
	require.Len(t, got, 40)
}

func TestBuildPacksInHilbertOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	x := NewIndex()
	total := geom.EmptyRect()
	count := 64
	for i := 0; i < count; i++ {
		cx := rng.Float64() * 200
		cy := rng.Float64() * 200
		box := geom.Rect{MinX: cx, MinY: cy, MaxX: cx + rng.Float64()*3, MaxY: cy + rng.Float64()*3}
		total = total.Union(box)
		x.Insert(box)
	}
	x.Build()

	side := float64(uint32(1)<<hilbertOrder - 1)
	scaleX := side / total.Width()
	scaleY := side / total.Height()
	key := func(box geom.Rect) uint64 {
		c := box.Center()
		gx := uint32((c.X - total.MinX) * scaleX)
		gy := uint32((c.Y - total.MinY) * scaleY)
		return hilbertD(gx, gy)
	}

	packed := leafBoxes(x.root)
	require.Len(t, packed, count)
	for i := 1; i < len(packed); i++ {
		assert.LessOrEqual(t, key(packed[i-1]), key(packed[i]),
			"packed entry %d is out of curve order", i)
	}
}

func TestDegenerateBoxes(t *testing.T) {
	// Points and a fully overlapping stack still come back.
	x := NewIndex()
	for i := 0; i < 10; i++ {
		x.Insert(geom.RectAround(geom.Pt(3, 4)))
	}
	x.Build()
	assert.Len(t, x.Query(geom.Rect{MinX: 2, MinY: 3, MaxX: 5, MaxY: 5}, nil), 10)
	assert.Empty(t, x.Query(geom.Rect{MinX: 10, MinY: 10, MaxX: 11, MaxY: 11}, nil))
}

// Helpers

// leafBoxes collects the packed entry boxes left to right.
func leafBoxes(n *node) []geom.Rect {
	if n == nil {
		return nil
	}
	if len(n.children) == 0 {
		out := make([]geom.Rect, 0, len(n.entries))
		for _, e := range n.entries {
			out = append(out, e.box)
		}
		return out
	}
	var out []geom.Rect
	for _, c := range n.children {
		out = append(out, leafBoxes(c)...)
	}
	return out
}
