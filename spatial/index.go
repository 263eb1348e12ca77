// Package spatial provides a static bounding box index: insert rectangles,
// pack once, then run window queries. Entries are packed along a Hilbert
// curve so that tree nodes cover tight, mostly-square regions.
package spatial

import (
	"sort"

	"github.com/arc-tools/archull/geom"
)

// branching factor of the packed tree
const nodeSize = 16

// hilbertOrder is the grid resolution used to linearize entry centers:
// 2^hilbertOrder cells per axis.
const hilbertOrder = 16

type entry struct {
	box geom.Rect
	id  int
}

type node struct {
	box      geom.Rect
	children []*node
	entries  []entry // set on leaves only
}

// Index is a packed Hilbert R-tree. Zero or more Insert calls, one Build,
// then any number of Query calls. Queries before Build scan nothing.
type Index struct {
	pending []entry
	root    *node
}

func NewIndex() *Index {
	return &Index{}
}

// Insert registers a rectangle and returns its id, which is the insertion
// ordinal starting at zero.
func (x *Index) Insert(box geom.Rect) int {
	id := len(x.pending)
	x.pending = append(x.pending, entry{box: box, id: id})
	return id
}

// Len is the number of inserted rectangles.
func (x *Index) Len() int {
	return len(x.pending)
}

// Build packs the inserted rectangles into the tree. It sorts entries by
// the Hilbert position of their centers over the total bounds, then stacks
// fixed-size nodes bottom-up.
func (x *Index) Build() {
	if len(x.pending) == 0 {
		x.root = nil
		return
	}

	total := geom.EmptyRect()
	for _, e := range x.pending {
		total = total.Union(e.box)
	}
	side := float64(uint32(1)<<hilbertOrder - 1)
	scaleX, scaleY := 0.0, 0.0
	if total.Width() > 0 {
		scaleX = side / total.Width()
	}
	if total.Height() > 0 {
		scaleY = side / total.Height()
	}

	// The key travels with its entry so sorting keeps them paired.
	type keyed struct {
		key uint64
		ent entry
	}
	ranked := make([]keyed, len(x.pending))
	for i, e := range x.pending {
		c := e.box.Center()
		gx := uint32((c.X - total.MinX) * scaleX)
		gy := uint32((c.Y - total.MinY) * scaleY)
		ranked[i] = keyed{key: hilbertD(gx, gy), ent: e}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].key < ranked[j].key
	})
	order := make([]entry, len(ranked))
	for i, k := range ranked {
		order[i] = k.ent
	}

	// Leaves.
	level := make([]*node, 0, (len(order)+nodeSize-1)/nodeSize)
	for i := 0; i < len(order); i += nodeSize {
		end := i + nodeSize
		if end > len(order) {
			end = len(order)
		}
		leaf := &node{box: geom.EmptyRect(), entries: order[i:end]}
		for _, e := range leaf.entries {
			leaf.box = leaf.box.Union(e.box)
		}
		level = append(level, leaf)
	}

	// Stack internal levels until one root remains.
	for len(level) > 1 {
		next := make([]*node, 0, (len(level)+nodeSize-1)/nodeSize)
		for i := 0; i < len(level); i += nodeSize {
			end := i + nodeSize
			if end > len(level) {
				end = len(level)
			}
			parent := &node{box: geom.EmptyRect(), children: level[i:end]}
			for _, ch := range parent.children {
				parent.box = parent.box.Union(ch.box)
			}
			next = append(next, parent)
		}
		level = next
	}
	x.root = level[0]
}

// Query appends the ids of all rectangles intersecting window to buf and
// returns it. Order is not specified.
func (x *Index) Query(window geom.Rect, buf []int) []int {
	if x.root == nil {
		return buf
	}
	stack := []*node{x.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !n.box.Intersects(window) {
			continue
		}
		if n.entries != nil {
			for _, e := range n.entries {
				if e.box.Intersects(window) {
					buf = append(buf, e.id)
				}
			}
			continue
		}
		stack = append(stack, n.children...)
	}
	return buf
}

// hilbertD maps grid coordinates to their distance along the Hilbert curve.
func hilbertD(gx, gy uint32) uint64 {
	var d uint64
	for s := uint32(1) << (hilbertOrder - 1); s > 0; s >>= 1 {
		var rx, ry uint32
		if gx&s > 0 {
			rx = 1
		}
		if gy&s > 0 {
			ry = 1
		}
		d += uint64(s) * uint64(s) * uint64((3*rx)^ry)
		// Rotate the quadrant.
		if ry == 0 {
			if rx == 1 {
				gx = s - 1 - gx
				gy = s - 1 - gy
			}
			gx, gy = gy, gx
		}
	}
	return d
}
