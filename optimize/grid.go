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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Grid is an [Index] which sorts candidates into square buckets.
// Queries inspect the buckets in growing rings around the query point.
//
// A Grid works well when the candidates are spread evenly over a
// rectangle, which is the common case for plotter drawings.
type Grid struct {
	x0, y0  float64 // lower left corner of the grid
	size    float64 // side length of a bucket
	nx, ny  int
	cells   [][]int // entry indices per bucket
	entries []Candidate
	alive   []bool
	pos     map[int]int // candidate ID -> entry index
	n       int
}

// cellTarget is the average number of candidates per bucket.
const cellTarget = 2

// NewGrid builds a bucket grid holding the given candidates.
func NewGrid(cands []Candidate) *Grid {
	g := &Grid{}
	g.build(cands)
	return g
}

func (g *Grid) build(cands []Candidate) {
	n := len(cands)
	g.entries = append([]Candidate(nil), cands...)
	g.alive = make([]bool, n)
	g.pos = make(map[int]int, n)
	g.n = n
	if n == 0 {
		g.nx, g.ny = 0, 0
		g.cells = nil
		return
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, c := range cands {
		xMin = min(xMin, c.Pos.X)
		xMax = max(xMax, c.Pos.X)
		yMin = min(yMin, c.Pos.Y)
		yMax = max(yMax, c.Pos.Y)
	}
	w, h := xMax-xMin, yMax-yMin

	size := math.Sqrt(w * h * cellTarget / float64(n))
	if size == 0 || math.IsNaN(size) {
		// all candidates on a line or at a single point
		size = max(w, h) * cellTarget / float64(n)
	}
	// keep the number of buckets proportional to n for elongated inputs
	size = max(size, max(w, h)/float64(4*n))
	if size == 0 {
		size = 1
	}

	g.x0, g.y0 = xMin, yMin
	g.size = size
	g.nx = int(w/size) + 1
	g.ny = int(h/size) + 1
	g.cells = make([][]int, g.nx*g.ny)
	for i, c := range g.entries {
		g.alive[i] = true
		g.pos[c.ID] = i
		ix, iy := g.cellOf(c.Pos)
		k := iy*g.nx + ix
		g.cells[k] = append(g.cells[k], i)
	}
}

// cellOf returns the bucket coordinates of p.  The result lies outside the
// grid for points outside the indexed area.
func (g *Grid) cellOf(p vec.Vec2) (int, int) {
	const limit = 1 << 30
	fx := math.Floor((p.X - g.x0) / g.size)
	fy := math.Floor((p.Y - g.y0) / g.size)
	return int(max(-limit, min(limit, fx))), int(max(-limit, min(limit, fy)))
}

func (g *Grid) contains(ix, iy int) bool {
	return ix >= 0 && ix < g.nx && iy >= 0 && iy < g.ny
}

// Insert implements the [Index] interface.  Inserting a candidate outside
// the indexed area rebuilds the grid.
func (g *Grid) Insert(c Candidate) {
	ix, iy := 0, 0
	if g.nx > 0 {
		ix, iy = g.cellOf(c.Pos)
	}
	if !g.contains(ix, iy) {
		cands := g.liveEntries()
		g.build(append(cands, c))
		return
	}

	i := len(g.entries)
	g.entries = append(g.entries, c)
	g.alive = append(g.alive, true)
	g.pos[c.ID] = i
	k := iy*g.nx + ix
	g.cells[k] = append(g.cells[k], i)
	g.n++
}

// Remove implements the [Index] interface.
func (g *Grid) Remove(id int) {
	i, ok := g.pos[id]
	if !ok || !g.alive[i] {
		return
	}
	g.alive[i] = false
	g.n--
}

// Nearest implements the [Index] interface.
func (g *Grid) Nearest(p vec.Vec2) (Candidate, bool) {
	if g.n == 0 {
		return Candidate{}, false
	}

	cx, cy := g.cellOf(p)
	rMin := max(0, -cx, cx-(g.nx-1), -cy, cy-(g.ny-1))
	rMax := max(abs(cx), abs(cx-(g.nx-1)), abs(cy), abs(cy-(g.ny-1)))

	bestD := math.Inf(1)
	best := -1
	check := func(ix, iy int) {
		if !g.contains(ix, iy) {
			return
		}
		for _, i := range g.cells[iy*g.nx+ix] {
			if !g.alive[i] {
				continue
			}
			c := g.entries[i]
			d := dist2(c.Pos, p)
			if best < 0 || closer(d, c.ID, bestD, g.entries[best].ID) {
				bestD = d
				best = i
			}
		}
	}

	for r := rMin; r <= rMax; r++ {
		yLo, yHi := max(cy-r, 0), min(cy+r, g.ny-1)
		xLo, xHi := max(cx-r, 0), min(cx+r, g.nx-1)
		for iy := yLo; iy <= yHi; iy++ {
			if iy == cy-r || iy == cy+r {
				for ix := xLo; ix <= xHi; ix++ {
					check(ix, iy)
				}
			} else {
				check(cx-r, iy)
				if r > 0 {
					check(cx+r, iy)
				}
			}
		}

		// every bucket in ring r+1 is at least r*size away from p
		lim := float64(r) * g.size
		if best >= 0 && bestD < lim*lim {
			break
		}
	}

	if best < 0 {
		return Candidate{}, false
	}
	return g.entries[best], true
}

// Rebuild implements the [Index] interface.
func (g *Grid) Rebuild() {
	g.build(g.liveEntries())
}

func (g *Grid) liveEntries() []Candidate {
	cands := make([]Candidate, 0, g.n)
	for i, c := range g.entries {
		if g.alive[i] {
			cands = append(cands, c)
		}
	}
	return cands
}

// Len implements the [Index] interface.
func (g *Grid) Len() int {
	return g.n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
