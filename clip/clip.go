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

// Package clip restricts path geometry to an axis-aligned rectangle.
//
// Straight segments are clipped with the Liang–Barsky algorithm.  Cubic
// segments are cut at the parameter values where they cross the lines
// bounding the rectangle; the pieces inside are kept and re-subdivided, so
// that a curve which leaves and re-enters the rectangle produces several
// pieces.  Quadratic segments are promoted to cubics before clipping.
//
// Whenever the geometry is interrupted, the next piece starts a new
// subpath.
package clip

import (
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// seg is a drawing command with control points and end point.
type seg struct {
	cmd path.Command
	pts []vec.Vec2
}

func (s seg) end() vec.Vec2 {
	return s.pts[len(s.pts)-1]
}

// piece is the part of one input segment which survived clipping.
// t0 and t1 give the parameter range of the piece within the segment.
type piece struct {
	start  vec.Vec2
	s      seg
	t0, t1 float64
}

// run is a continuous sequence of clipped segments.
type run struct {
	start vec.Vec2
	segs  []seg
}

// Data returns the parts of p which lie inside r.  Subpaths which are
// entirely inside r are copied unchanged, including their close commands.
// The input is not modified.
func Data(p *path.Data, r rect.Rect) *path.Data {
	res := &path.Data{}

	var start, current vec.Vec2
	var segs []seg
	open := false
	flush := func(closed bool) {
		if open {
			clipSubpath(res, start, segs, closed, r)
		}
		segs = segs[:0]
		open = false
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			current = p.Coords[coordIdx]
			start = current
			open = true
			coordIdx++
			continue
		case path.CmdClose:
			flush(true)
			current = start
			continue
		}

		n := coordsPerCmd(cmd)
		if !open {
			// a drawing command directly after a close command
			start = current
			open = true
		}
		segs = append(segs, seg{cmd, p.Coords[coordIdx : coordIdx+n]})
		current = p.Coords[coordIdx+n-1]
		coordIdx += n
	}
	flush(false)

	return res
}

func coordsPerCmd(cmd path.Command) int {
	switch cmd {
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 1
	}
}

// clipSubpath clips one subpath and appends the result to res.
func clipSubpath(res *path.Data, start vec.Vec2, segs []seg, closed bool, r rect.Rect) {
	if allInside(start, segs, r) {
		res.MoveTo(start)
		for _, s := range segs {
			appendSeg(res, s)
		}
		if closed {
			res.Close()
		}
		return
	}

	if closed {
		last := start
		if len(segs) > 0 {
			last = segs[len(segs)-1].end()
		}
		if last != start {
			segs = append(slices.Clip(segs), seg{path.CmdLineTo, []vec.Vec2{start}})
		}
	}

	var runs []run
	firstAtStart := false // the first run begins at the subpath start
	open := false         // the last run reaches the current point
	current := start
	for i, s := range segs {
		pcs := clipSeg(current, s, r)
		for k, pc := range pcs {
			if k == 0 && pc.t0 == 0 && open {
				runs[len(runs)-1].segs = append(runs[len(runs)-1].segs, pc.s)
				continue
			}
			if len(runs) == 0 && i == 0 && pc.t0 == 0 {
				firstAtStart = true
			}
			runs = append(runs, run{start: pc.start, segs: []seg{pc.s}})
		}
		open = len(pcs) > 0 && pcs[len(pcs)-1].t1 == 1
		current = s.end()
	}

	wrap := closed && firstAtStart && open
	if wrap && len(runs) > 1 {
		last := runs[len(runs)-1]
		last.segs = append(last.segs, runs[0].segs...)
		runs = append(runs[1:len(runs)-1], last)
		wrap = false
	}

	for _, rn := range runs {
		res.MoveTo(rn.start)
		for _, s := range rn.segs {
			appendSeg(res, s)
		}
	}
	if wrap {
		// the single run goes all the way round
		res.Close()
	}
}

func appendSeg(res *path.Data, s seg) {
	switch s.cmd {
	case path.CmdLineTo:
		res.LineTo(s.pts[0])
	case path.CmdQuadTo:
		res.QuadTo(s.pts[0], s.pts[1])
	case path.CmdCubeTo:
		res.CubeTo(s.pts[0], s.pts[1], s.pts[2])
	}
}

// allInside reports whether the subpath, including all control points, is
// inside r.  Since Bézier curves stay within the convex hull of their
// control points, such a subpath needs no clipping.
func allInside(start vec.Vec2, segs []seg, r rect.Rect) bool {
	if !inside(start, r) {
		return false
	}
	for _, s := range segs {
		for _, p := range s.pts {
			if !inside(p, r) {
				return false
			}
		}
	}
	return true
}

// clipSeg clips a single segment starting at p0.
func clipSeg(p0 vec.Vec2, s seg, r rect.Rect) []piece {
	switch s.cmd {
	case path.CmdLineTo:
		p1 := s.pts[0]
		t0, t1, ok := clipLine(p0, p1, r)
		if !ok {
			return nil
		}
		a := clampPoint(lerp(p0, p1, t0), r)
		b := clampPoint(lerp(p0, p1, t1), r)
		return []piece{{start: a, s: seg{path.CmdLineTo, []vec.Vec2{b}}, t0: t0, t1: t1}}

	case path.CmdQuadTo:
		if inside(p0, r) && inside(s.pts[0], r) && inside(s.pts[1], r) {
			return []piece{{start: p0, s: s, t0: 0, t1: 1}}
		}
		c1, c2 := quadToCubic(p0, s.pts[0], s.pts[1])
		return clipCubic(p0, c1, c2, s.pts[1], r)

	case path.CmdCubeTo:
		return clipCubic(p0, s.pts[0], s.pts[1], s.pts[2], r)
	}
	return nil
}

// clipCubic clips the cubic Bézier curve p0, p1, p2, p3 to r.
func clipCubic(p0, p1, p2, p3 vec.Vec2, r rect.Rect) []piece {
	ctrl := [4]vec.Vec2{p0, p1, p2, p3}
	if inside(p0, r) && inside(p1, r) && inside(p2, r) && inside(p3, r) {
		return []piece{{start: p0, s: seg{path.CmdCubeTo, []vec.Vec2{p1, p2, p3}}, t0: 0, t1: 1}}
	}
	if outsideOneSide(ctrl, r) {
		return nil
	}

	ts := []float64{0, 1}
	xs := [4]float64{p0.X, p1.X, p2.X, p3.X}
	ys := [4]float64{p0.Y, p1.Y, p2.Y, p3.Y}
	ts = append(ts, crossings(xs, r.LLx)...)
	ts = append(ts, crossings(xs, r.URx)...)
	ts = append(ts, crossings(ys, r.LLy)...)
	ts = append(ts, crossings(ys, r.URy)...)
	slices.Sort(ts)
	ts = slices.Compact(ts)

	// keep every parameter interval whose midpoint is inside, merging
	// adjacent intervals
	var ranges [][2]float64
	for i := 0; i+1 < len(ts); i++ {
		a, b := ts[i], ts[i+1]
		if !insideTol(cubicAt(ctrl, (a+b)/2), r) {
			continue
		}
		if n := len(ranges); n > 0 && ranges[n-1][1] == a {
			ranges[n-1][1] = b
		} else {
			ranges = append(ranges, [2]float64{a, b})
		}
	}

	res := make([]piece, 0, len(ranges))
	for _, rg := range ranges {
		sub := subdivide(ctrl, rg[0], rg[1])
		res = append(res, piece{
			start: clampPoint(sub[0], r),
			s:     seg{path.CmdCubeTo, []vec.Vec2{sub[1], sub[2], clampPoint(sub[3], r)}},
			t0:    rg[0],
			t1:    rg[1],
		})
	}
	return res
}

// crossings returns the parameters in the open unit interval where the
// one-dimensional cubic Bézier with control values c takes the value v.
func crossings(c [4]float64, v float64) []float64 {
	a := -c[0] + 3*c[1] - 3*c[2] + c[3]
	b := 3*c[0] - 6*c[1] + 3*c[2]
	cc := -3*c[0] + 3*c[1]
	d := c[0] - v

	var res []float64
	for _, t := range solveCubic(a, b, cc, d) {
		if t > rootMargin && t < 1-rootMargin {
			res = append(res, t)
		}
	}
	return res
}

// outsideOneSide reports whether all control points are strictly outside
// the same edge of r.
func outsideOneSide(ctrl [4]vec.Vec2, r rect.Rect) bool {
	var left, right, below, above int
	for _, p := range ctrl {
		if p.X < r.LLx {
			left++
		}
		if p.X > r.URx {
			right++
		}
		if p.Y < r.LLy {
			below++
		}
		if p.Y > r.URy {
			above++
		}
	}
	return left == 4 || right == 4 || below == 4 || above == 4
}

// clipLine clips the segment from p0 to p1 to r using the Liang–Barsky
// algorithm.  The result gives the parameter range inside r.
func clipLine(p0, p1 vec.Vec2, r rect.Rect) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1
	d := p1.Sub(p0)

	test := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = min(t1, t)
		}
		return true
	}

	if !test(-d.X, p0.X-r.LLx) || !test(d.X, r.URx-p0.X) ||
		!test(-d.Y, p0.Y-r.LLy) || !test(d.Y, r.URy-p0.Y) {
		return 0, 0, false
	}
	if t0 >= t1 && p0 != p1 {
		// the segment only touches a corner
		return 0, 0, false
	}
	return t0, t1, true
}

// Polyline returns the parts of the polyline pts which lie inside r.  Each
// uninterrupted stretch becomes a separate polyline.  For a closed
// polyline, the stretch through the first point is not split in two.
func Polyline(pts []vec.Vec2, r rect.Rect) [][]vec.Vec2 {
	if len(pts) == 0 {
		return nil
	}
	if len(pts) == 1 {
		if inside(pts[0], r) {
			return [][]vec.Vec2{{pts[0]}}
		}
		return nil
	}

	var runs [][]vec.Vec2
	open := false
	firstAtStart := false
	for i := 0; i+1 < len(pts); i++ {
		t0, t1, ok := clipLine(pts[i], pts[i+1], r)
		if !ok {
			open = false
			continue
		}
		a := clampPoint(lerp(pts[i], pts[i+1], t0), r)
		b := clampPoint(lerp(pts[i], pts[i+1], t1), r)
		if t0 == 0 && open {
			runs[len(runs)-1] = append(runs[len(runs)-1], b)
		} else {
			if len(runs) == 0 && i == 0 && t0 == 0 {
				firstAtStart = true
			}
			runs = append(runs, []vec.Vec2{a, b})
		}
		open = t1 == 1
	}

	closed := len(pts) > 2 && pts[0] == pts[len(pts)-1]
	if closed && firstAtStart && open && len(runs) > 1 {
		last := runs[len(runs)-1]
		last = append(last, runs[0][1:]...)
		runs = append(runs[1:len(runs)-1], last)
	}
	return runs
}

func inside(p vec.Vec2, r rect.Rect) bool {
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}

// insideTol is like inside, but allows for rounding errors in curve
// evaluation.
func insideTol(p vec.Vec2, r rect.Rect) bool {
	return p.X >= r.LLx-insideSlack && p.X <= r.URx+insideSlack &&
		p.Y >= r.LLy-insideSlack && p.Y <= r.URy+insideSlack
}

func clampPoint(p vec.Vec2, r rect.Rect) vec.Vec2 {
	return vec.Vec2{
		X: min(max(p.X, r.LLx), r.URx),
		Y: min(max(p.Y, r.LLy), r.URy),
	}
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return a.Add(b.Sub(a).Mul(t))
}

const (
	// rootMargin excludes crossings too close to the segment ends to
	// produce a meaningful piece.
	rootMargin = 1e-9

	// insideSlack absorbs rounding errors when testing whether a point on
	// a curve is inside the clip rectangle.
	insideSlack = 1e-9
)
