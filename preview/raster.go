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

package preview

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// edge is a polygon edge in pixel coordinates.  Horizontal edges are never
// stored.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// rasterizer converts closed polygons into anti-aliased pixel coverage,
// using the nonzero winding rule.  Polygons added between two calls to
// fill are treated as one shape, so overlapping pieces with the same
// orientation merge into their union.
//
// Buffers are reused across shapes.
type rasterizer struct {
	width, height int

	edges  []edge
	active []int
	cover  []float32 // signed vertical extent per pixel, reused as output
	area   []float32 // signed area right of the edge within the pixel
}

func newRasterizer(width, height int) *rasterizer {
	return &rasterizer{width: width, height: height}
}

// addRing adds the closed polygon through pts.
func (r *rasterizer) addRing(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	prev := pts[len(pts)-1]
	for _, p := range pts {
		r.addEdge(prev, p)
		prev = p
	}
}

func (r *rasterizer) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if math.Abs(dy) < horizontalThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})
}

// fill rasterizes all polygons added since the last call and calls emit
// for every scan line with non-zero coverage.  The coverage slice is only
// valid during the call.
func (r *rasterizer) fill(emit func(y, xMin int, coverage []float32)) {
	defer func() { r.edges = r.edges[:0] }()
	if len(r.edges) == 0 {
		return
	}

	xLo, xHi := math.Inf(1), math.Inf(-1)
	yLo, yHi := math.Inf(1), math.Inf(-1)
	for i := range r.edges {
		e := &r.edges[i]
		xLo = min(xLo, e.x0, e.x1)
		xHi = max(xHi, e.x0, e.x1)
		yLo = min(yLo, e.yMin())
		yHi = max(yHi, e.yMax())
	}
	xMin := max(int(math.Floor(xLo)), 0)
	xMax := min(int(math.Floor(xHi))+1, r.width)
	yMin := max(int(math.Floor(yLo)), 0)
	yMax := min(int(math.Floor(yHi))+1, r.height)
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && r.edges[next].yMin() < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= yf {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			touched = accumulate(e, y, r.cover, r.area, xMin, xMax) || touched
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// Coverage model: for every pixel two values are accumulated.  cover is
// the signed vertical extent of the edges crossing the pixel, area is
// cover weighted by the fraction of the pixel to the right of the
// crossing.  Summing cover from the left and adding area gives the signed
// area of the shape within each pixel.

// accumulate adds the contribution of e within scan line y to the buffers,
// which are indexed by x-xMin.  Edges left of the buffer contribute to
// its first pixel.  The return value reports whether anything was added.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) bool {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))

	add := func(pix int, y0, y1 float64) {
		c := sign * float32(y1-y0)
		if pix < xMin {
			cover[0] += c
			area[0] += c
			return
		}
		if pix >= xMax {
			return
		}
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		cover[pix-xMin] += c
		area[pix-xMin] += c * float32(1-(xMid-float64(pix)))
	}

	if left >= xMax {
		return false
	}
	if left == right {
		add(left, yTop, yBot)
		return true
	}

	// split the edge at pixel column boundaries
	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		y0 := max(min(ya, yb), yTop)
		y1 := min(max(ya, yb), yBot)
		if y1 > y0 {
			add(pix, y0, y1)
		}
	}
	return true
}

// integrate turns the accumulated values of one scan line into coverage
// values in [0, 1], in place.
func integrate(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, and the offset of this part.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// horizontalThreshold is the smallest vertical extent of an edge which
// contributes to coverage.
const horizontalThreshold = 1e-10
