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

// Package hatch fills closed outlines with parallel lines.
//
// Plotters can only draw lines.  To give the impression of a filled
// shape, the area is covered with parallel hatch lines, spaced about one
// pen width apart.  The inside of the shape is determined by the even-odd
// rule over all rings, so that a ring inside another one cuts a hole.
package hatch

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Params control the hatch pattern.
type Params struct {
	// Spacing is the distance between adjacent hatch lines.
	Spacing float64

	// Angle is the direction of the hatch lines in radians.  0 gives
	// horizontal lines.
	Angle float64

	// Inset shortens every hatch line by Spacing/2 at both ends, so that
	// the lines do not run into the stroked outline.
	Inset bool

	// JoinLines connects hatch lines on adjacent scan lines into
	// zig-zag polylines, to reduce the number of pen lifts.
	JoinLines bool

	// Outline adds the boundary of the area to the result, as closed
	// polylines ahead of the hatch lines.  If Inset is set, the boundary
	// is moved inwards by Spacing/2, so that the pen stroke stays inside
	// the original shape.
	Outline bool
}

// DefaultParams returns parameters for horizontal hatch lines with the
// given spacing, with Inset, JoinLines and Outline enabled.
func DefaultParams(spacing float64) Params {
	return Params{
		Spacing:   spacing,
		Inset:     true,
		JoinLines: true,
		Outline:   true,
	}
}

// maxJoinGap is the largest gap, in multiples of the spacing, which
// JoinLines bridges.
const maxJoinGap = 5

// degenerate is the length below which hatch spans are dropped.
const degenerate = 1e-10

// edge is an outline segment in hatch space.  Edges used for scan line
// crossings have y0 < y1.
type edge struct {
	x0, y0, x1, y1 float64
}

// span is the part of one scan line inside the outline.
type span struct {
	x0, x1 float64
}

// Fill computes hatch lines covering the area enclosed by rings.  Rings
// which are not closed are closed implicitly.  Each returned polyline is
// one hatch line, or a chain of hatch lines if p.JoinLines is set.  With
// p.Outline, the boundary rings come first.
//
// If the spacing is not positive, or if the rings enclose no area, the
// result is empty.
func Fill(rings [][]vec.Vec2, p Params) [][]vec.Vec2 {
	s := p.Spacing
	if !(s > 0) {
		return nil
	}

	// Rotate into hatch space, where the hatch lines are horizontal.
	sin, cos := math.Sincos(p.Angle)
	toHatch := func(q vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: q.X*cos + q.Y*sin, Y: -q.X*sin + q.Y*cos}
	}
	fromHatch := func(q vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: q.X*cos - q.Y*sin, Y: q.X*sin + q.Y*cos}
	}

	var edges, outline []edge
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, ring := range rings {
		if len(ring) < 2 {
			continue
		}
		for i := range ring {
			a := toHatch(ring[i])
			b := toHatch(ring[(i+1)%len(ring)])
			yMin = min(yMin, a.Y)
			yMax = max(yMax, a.Y)
			outline = append(outline, edge{a.X, a.Y, b.X, b.Y})
			if a.Y == b.Y {
				continue
			}
			if a.Y > b.Y {
				a, b = b, a
			}
			edges = append(edges, edge{a.X, a.Y, b.X, b.Y})
		}
	}
	if len(edges) == 0 {
		return nil
	}

	h := yMax - yMin
	n := max(1, int(math.Ceil(h/s)))
	y0 := yMin + (h-float64(n-1)*s)/2

	rows := make([][]span, n)
	ys := make([]float64, n)
	var xs []float64
	for k := range n {
		y := y0 + float64(k)*s
		ys[k] = y

		xs = xs[:0]
		for _, e := range edges {
			// half-open, so that a vertex on the scan line counts once
			if y < e.y0 || y >= e.y1 {
				continue
			}
			t := (y - e.y0) / (e.y1 - e.y0)
			xs = append(xs, e.x0+t*(e.x1-e.x0))
		}
		slices.Sort(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			a, b := xs[i], xs[i+1]
			if p.Inset {
				if b-a <= s {
					continue
				}
				a += s / 2
				b -= s / 2
			}
			if b-a <= degenerate {
				continue
			}
			rows[k] = append(rows[k], span{a, b})
		}
	}

	var lines [][]vec.Vec2
	if p.JoinLines {
		lines = joinRows(rows, ys, outline, s)
	} else {
		for k, row := range rows {
			for _, sp := range row {
				lines = append(lines, []vec.Vec2{{X: sp.x0, Y: ys[k]}, {X: sp.x1, Y: ys[k]}})
			}
		}
	}

	for _, line := range lines {
		for i, q := range line {
			line[i] = fromHatch(q)
		}
	}

	if p.Outline {
		var d float64
		if p.Inset {
			d = s / 2
		}
		lines = append(outlines(rings, d), lines...)
	}
	return lines
}

// chain is a zig-zag polyline under construction.
type chain struct {
	pts    []vec.Vec2
	row    int // last scan line the chain was extended on
	active bool
}

// joinRows connects spans on adjacent scan lines into chains.  A span
// continues a chain from the previous scan line if the connecting segment
// is at most maxJoinGap*s long and crosses no edge of the outline.
func joinRows(rows [][]span, ys []float64, outline []edge, s float64) [][]vec.Vec2 {
	var chains []*chain
	maxGap := maxJoinGap * s

	for k, row := range rows {
		y := ys[k]
		for _, sp := range row {
			left := vec.Vec2{X: sp.x0, Y: y}
			right := vec.Vec2{X: sp.x1, Y: y}

			var best *chain
			bestGap := math.Inf(1)
			bestFromLeft := false
			for _, c := range chains {
				if !c.active || c.row != k-1 {
					continue
				}
				end := c.pts[len(c.pts)-1]
				for _, fromLeft := range []bool{true, false} {
					entry := right
					if fromLeft {
						entry = left
					}
					gap := entry.Sub(end).Length()
					if gap > maxGap || gap >= bestGap {
						continue
					}
					if crossesOutline(end, entry, outline) {
						continue
					}
					best, bestGap, bestFromLeft = c, gap, fromLeft
				}
			}

			if best == nil {
				chains = append(chains, &chain{
					pts:    []vec.Vec2{left, right},
					row:    k,
					active: true,
				})
				continue
			}
			if bestFromLeft {
				best.pts = append(best.pts, left, right)
			} else {
				best.pts = append(best.pts, right, left)
			}
			best.row = k
		}

		// chains which were not continued on this scan line are finished
		for _, c := range chains {
			if c.active && c.row < k {
				c.active = false
			}
		}
	}

	res := make([][]vec.Vec2, len(chains))
	for i, c := range chains {
		res[i] = c.pts
	}
	return res
}

// crossesOutline reports whether the segment from a to b properly
// intersects one of the outline edges.
func crossesOutline(a, b vec.Vec2, edges []edge) bool {
	for _, e := range edges {
		c := vec.Vec2{X: e.x0, Y: e.y0}
		d := vec.Vec2{X: e.x1, Y: e.y1}
		if properIntersect(a, b, c, d) {
			return true
		}
	}
	return false
}

func properIntersect(a, b, c, d vec.Vec2) bool {
	d1 := orient(c, d, a)
	d2 := orient(c, d, b)
	d3 := orient(a, b, c)
	d4 := orient(a, b, d)
	return d1*d2 < 0 && d3*d4 < 0
}

// orient returns twice the signed area of the triangle a, b, c.
func orient(a, b, c vec.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
