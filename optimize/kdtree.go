// seehuhn.de/go/plotter - vector geometry for pen plotters
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package optimize

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// KDTree is an [Index] based on a static two-dimensional k-d tree.
//
// The tree is stored implicitly: the node for the index range [lo, hi) of
// the node slice sits at position (lo+hi)/2, and the two halves of the
// range hold the left and right subtrees.  Every node records how many
// live candidates its subtree contains, so that searches can skip
// subtrees in which every entry has been removed.  Candidates inserted
// after construction are kept in a separate list until the next rebuild.
type KDTree struct {
	nodes  []kdNode
	live   []int // live candidates in the subtree rooted at each node
	parent []int
	pos    map[int]int // candidate ID -> node index
	extra  []Candidate
	n      int
}

type kdNode struct {
	c     Candidate
	axis  uint8 // 0 splits on x, 1 on y
	alive bool
}

// NewKDTree builds a k-d tree holding the given candidates.
func NewKDTree(cands []Candidate) *KDTree {
	t := &KDTree{}
	t.build(cands)
	return t
}

func (t *KDTree) build(cands []Candidate) {
	n := len(cands)
	t.nodes = make([]kdNode, n)
	for i, c := range cands {
		t.nodes[i] = kdNode{c: c, alive: true}
	}
	t.live = make([]int, n)
	t.parent = make([]int, n)
	t.pos = make(map[int]int, n)
	t.extra = t.extra[:0]
	t.n = n

	t.split(0, n, -1)
	for i, nd := range t.nodes {
		t.pos[nd.c.ID] = i
	}
}

// split arranges nodes[lo:hi] into a subtree and returns its root.
func (t *KDTree) split(lo, hi, parent int) int {
	if lo >= hi {
		return -1
	}
	part := t.nodes[lo:hi]

	// split along the axis of larger spread
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, nd := range part {
		xMin = min(xMin, nd.c.Pos.X)
		xMax = max(xMax, nd.c.Pos.X)
		yMin = min(yMin, nd.c.Pos.Y)
		yMax = max(yMax, nd.c.Pos.Y)
	}
	var axis uint8
	if yMax-yMin > xMax-xMin {
		axis = 1
	}
	slices.SortFunc(part, func(a, b kdNode) int {
		if c := cmp.Compare(coord(a.c.Pos, axis), coord(b.c.Pos, axis)); c != 0 {
			return c
		}
		return cmp.Compare(a.c.ID, b.c.ID)
	})

	m := (lo + hi) / 2
	t.nodes[m].axis = axis
	t.live[m] = hi - lo
	t.parent[m] = parent
	t.split(lo, m, m)
	t.split(m+1, hi, m)
	return m
}

func coord(p vec.Vec2, axis uint8) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// Insert implements the [Index] interface.
func (t *KDTree) Insert(c Candidate) {
	t.extra = append(t.extra, c)
	t.n++
}

// Remove implements the [Index] interface.
func (t *KDTree) Remove(id int) {
	if i, ok := t.pos[id]; ok {
		if !t.nodes[i].alive {
			return
		}
		t.nodes[i].alive = false
		for j := i; j >= 0; j = t.parent[j] {
			t.live[j]--
		}
		t.n--
		return
	}
	for i, c := range t.extra {
		if c.ID == id {
			t.extra = slices.Delete(t.extra, i, i+1)
			t.n--
			return
		}
	}
}

// Nearest implements the [Index] interface.
func (t *KDTree) Nearest(p vec.Vec2) (Candidate, bool) {
	s := kdSearch{t: t, p: p, bestD: math.Inf(1), bestIdx: -1}
	s.visit(0, len(t.nodes))

	var best Candidate
	found := s.bestIdx >= 0
	if found {
		best = t.nodes[s.bestIdx].c
	}
	for _, c := range t.extra {
		d := dist2(c.Pos, p)
		if !found || closer(d, c.ID, s.bestD, best.ID) {
			best = c
			s.bestD = d
			found = true
		}
	}
	return best, found
}

type kdSearch struct {
	t       *KDTree
	p       vec.Vec2
	bestD   float64
	bestIdx int
}

func (s *kdSearch) visit(lo, hi int) {
	if lo >= hi {
		return
	}
	m := (lo + hi) / 2
	if s.t.live[m] == 0 {
		return
	}

	nd := &s.t.nodes[m]
	if nd.alive {
		d := dist2(nd.c.Pos, s.p)
		if s.bestIdx < 0 || closer(d, nd.c.ID, s.bestD, s.t.nodes[s.bestIdx].c.ID) {
			s.bestD = d
			s.bestIdx = m
		}
	}

	diff := coord(s.p, nd.axis) - coord(nd.c.Pos, nd.axis)
	if diff < 0 {
		s.visit(lo, m)
		if diff*diff <= s.bestD {
			s.visit(m+1, hi)
		}
	} else {
		s.visit(m+1, hi)
		if diff*diff <= s.bestD {
			s.visit(lo, m)
		}
	}
}

// Rebuild implements the [Index] interface.
func (t *KDTree) Rebuild() {
	cands := make([]Candidate, 0, t.n)
	for _, nd := range t.nodes {
		if nd.alive {
			cands = append(cands, nd.c)
		}
	}
	cands = append(cands, t.extra...)
	t.build(cands)
}

// Len implements the [Index] interface.
func (t *KDTree) Len() int {
	return t.n
}
