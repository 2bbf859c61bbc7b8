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

package plotter

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plotter/clip"
)

// Bezier is a vector curve made of move, line, quadratic, cubic and close
// commands.  It may contain several subpaths.  Each subpath is expected to
// begin with a move command.
type Bezier path.Data

// NewBezier wraps d.  The curve shares storage with d.
func NewBezier(d *path.Data) *Bezier {
	if d == nil {
		return &Bezier{}
	}
	return (*Bezier)(d)
}

// Data returns the underlying path data.
func (b *Bezier) Data() *path.Data {
	return (*path.Data)(b)
}

// segment is one drawing command of a subpath.  pts holds the control
// points followed by the end point.
type segment struct {
	cmd path.Command
	pts []vec.Vec2
}

func (s segment) end() vec.Vec2 {
	return s.pts[len(s.pts)-1]
}

// subpath is a continuous piece of a Bezier curve.
type subpath struct {
	start  vec.Vec2
	segs   []segment
	closed bool
}

func (sp *subpath) end() vec.Vec2 {
	if sp.closed || len(sp.segs) == 0 {
		return sp.start
	}
	return sp.segs[len(sp.segs)-1].end()
}

// lastPoint returns the end of the last drawing command, ignoring a final
// close command.
func (sp *subpath) lastPoint() vec.Vec2 {
	if len(sp.segs) == 0 {
		return sp.start
	}
	return sp.segs[len(sp.segs)-1].end()
}

// subpaths splits the curve into its subpaths.  The returned segments share
// storage with b.
func (b *Bezier) subpaths() []subpath {
	var res []subpath
	var cur *subpath
	var current vec.Vec2

	// make sure there is an open subpath to append drawing commands to
	ensure := func() {
		if cur == nil || cur.closed {
			res = append(res, subpath{start: current})
			cur = &res[len(res)-1]
		}
	}

	coordIdx := 0
	for _, cmd := range b.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = b.Coords[coordIdx]
			res = append(res, subpath{start: current})
			cur = &res[len(res)-1]
			coordIdx++

		case path.CmdLineTo:
			ensure()
			cur.segs = append(cur.segs, segment{cmd, b.Coords[coordIdx : coordIdx+1]})
			current = b.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			ensure()
			cur.segs = append(cur.segs, segment{cmd, b.Coords[coordIdx : coordIdx+2]})
			current = b.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			ensure()
			cur.segs = append(cur.segs, segment{cmd, b.Coords[coordIdx : coordIdx+3]})
			current = b.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if cur != nil && !cur.closed {
				cur.closed = true
				current = cur.start
			}
		}
	}

	return res
}

// fromSubpaths assembles a new curve.  All coordinates are copied.
func fromSubpaths(sps []subpath) *Bezier {
	res := &Bezier{}
	for _, sp := range sps {
		res.Cmds = append(res.Cmds, path.CmdMoveTo)
		res.Coords = append(res.Coords, sp.start)
		for _, s := range sp.segs {
			res.Cmds = append(res.Cmds, s.cmd)
			res.Coords = append(res.Coords, s.pts...)
		}
		if sp.closed {
			res.Cmds = append(res.Cmds, path.CmdClose)
		}
	}
	return res
}

// Bounds implements the [Curve] interface.  The box is tight: curve
// segments contribute their extrema, not their control points.
func (b *Bezier) Bounds() (rect.Rect, bool) {
	var r rect.Rect
	first := true
	add := func(p vec.Vec2) {
		if first {
			r = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			first = false
			return
		}
		r.Add(p.X, p.Y)
	}

	for _, sp := range b.subpaths() {
		add(sp.start)
		current := sp.start
		for _, s := range sp.segs {
			switch s.cmd {
			case path.CmdQuadTo:
				for _, t := range quadExtrema(current, s.pts[0], s.pts[1]) {
					add(quadAt(current, s.pts[0], s.pts[1], t))
				}
			case path.CmdCubeTo:
				for _, t := range cubicExtrema(current, s.pts[0], s.pts[1], s.pts[2]) {
					add(cubicAt(current, s.pts[0], s.pts[1], s.pts[2], t))
				}
			}
			add(s.end())
			current = s.end()
		}
	}
	return r, !first
}

// Start implements the [Curve] interface.
func (b *Bezier) Start() (vec.Vec2, bool) {
	if len(b.Cmds) == 0 {
		return vec.Vec2{}, false
	}
	if b.Cmds[0] == path.CmdMoveTo {
		return b.Coords[0], true
	}
	return vec.Vec2{}, true
}

// End implements the [Curve] interface.  After a close command, the end is
// the start of the closed subpath.
func (b *Bezier) End() (vec.Vec2, bool) {
	if len(b.Cmds) == 0 {
		return vec.Vec2{}, false
	}
	var current, start vec.Vec2
	coordIdx := 0
	for _, cmd := range b.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = b.Coords[coordIdx]
			start = current
			coordIdx++
		case path.CmdLineTo:
			current = b.Coords[coordIdx]
			coordIdx++
		case path.CmdQuadTo:
			current = b.Coords[coordIdx+1]
			coordIdx += 2
		case path.CmdCubeTo:
			current = b.Coords[coordIdx+2]
			coordIdx += 3
		case path.CmdClose:
			current = start
		}
	}
	return current, true
}

// IsPoint implements the [Curve] interface.
func (b *Bezier) IsPoint() bool {
	if len(b.Coords) == 0 {
		return false
	}
	p0 := b.Coords[0]
	for _, p := range b.Coords[1:] {
		if dist(p, p0) > SamePointEpsilon {
			return false
		}
	}
	return true
}

// IsClosed implements the [Curve] interface.
func (b *Bezier) IsClosed(eps float64) bool {
	s, ok1 := b.Start()
	e, ok2 := b.End()
	return ok1 && ok2 && dist(s, e) <= eps
}

// Flip implements the [Curve] interface.  The subpaths are visited in
// reverse order, each traversed backwards.  A closed subpath starts at its
// former last point, so that flipping twice restores the original curve.
func (b *Bezier) Flip() {
	sps := b.subpaths()
	slices.Reverse(sps)
	for i := range sps {
		sps[i] = reverseSubpath(sps[i])
	}
	*b = *fromSubpaths(sps)
}

func reverseSubpath(sp subpath) subpath {
	k := len(sp.segs)
	res := subpath{
		start:  sp.lastPoint(),
		segs:   make([]segment, k),
		closed: sp.closed,
	}
	for j := range k {
		s := sp.segs[k-1-j]
		prev := sp.start
		if k-1-j > 0 {
			prev = sp.segs[k-2-j].end()
		}
		pts := make([]vec.Vec2, len(s.pts))
		for i := range len(s.pts) - 1 {
			pts[i] = s.pts[len(s.pts)-2-i]
		}
		pts[len(pts)-1] = prev
		res.segs[j] = segment{s.cmd, pts}
	}
	return res
}

// Join implements the [Curve] interface.  If the gap between the end of b
// and the start of other is below [SamePointEpsilon], the move command of
// other is dropped.  Gaps up to eps are bridged by a straight line.
// Larger gaps, and curves ending in a close command, keep the move command
// and thus start a new subpath.
func (b *Bezier) Join(other *Bezier, eps float64) {
	if other == nil || len(other.Cmds) == 0 {
		return
	}
	if len(b.Cmds) == 0 {
		*b = *other.Clone()
		return
	}

	mine := b.subpaths()
	theirs := other.subpaths()
	last := &mine[len(mine)-1]
	if !last.closed {
		first := theirs[0]
		gap := dist(last.lastPoint(), first.start)
		if gap <= eps {
			if first.closed {
				// The close command would refer to the wrong subpath start
				// after merging, so spell out the closing line.
				if dist(first.lastPoint(), first.start) > 0 {
					first.segs = append(first.segs, segment{path.CmdLineTo, []vec.Vec2{first.start}})
				}
			}
			if gap > SamePointEpsilon {
				last.segs = append(last.segs, segment{path.CmdLineTo, []vec.Vec2{first.start}})
			}
			last.segs = append(last.segs, first.segs...)
			theirs = theirs[1:]
		}
	}
	*b = *fromSubpaths(append(mine, theirs...))
}

// Split implements the [Curve] interface.
func (b *Bezier) Split() []*Bezier {
	sps := b.subpaths()
	res := make([]*Bezier, len(sps))
	for i, sp := range sps {
		res[i] = fromSubpaths([]subpath{sp})
	}
	return res
}

// Transform implements the [Curve] interface.
func (b *Bezier) Transform(m matrix.Matrix) {
	for i, p := range b.Coords {
		b.Coords[i] = Apply(m, p)
	}
}

// Crop implements the [Curve] interface.  The result is a single compound
// curve, or nil if nothing remains.
func (b *Bezier) Crop(r rect.Rect) []*Bezier {
	res := clip.Data(b.Data(), r)
	if len(res.Cmds) == 0 {
		return nil
	}
	return []*Bezier{NewBezier(res)}
}

// Flatten implements the [Curve] interface.  A non-positive tolerance
// selects [DefaultTolerance].  Subpaths consisting of a single move command
// produce no output.
func (b *Bezier) Flatten(tol float64) []*Polyline {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	var res []*Polyline
	for _, sp := range b.subpaths() {
		if len(sp.segs) == 0 && !sp.closed {
			continue
		}
		pts := []vec.Vec2{sp.start}
		emit := func(p vec.Vec2) { pts = append(pts, p) }
		current := sp.start
		for _, s := range sp.segs {
			switch s.cmd {
			case path.CmdLineTo:
				emit(s.pts[0])
			case path.CmdQuadTo:
				flattenQuadratic(current, s.pts[0], s.pts[1], tol, emit)
			case path.CmdCubeTo:
				flattenCubic(current, s.pts[0], s.pts[1], s.pts[2], tol, emit)
			}
			current = s.end()
		}
		if sp.closed && pts[len(pts)-1] != sp.start {
			emit(sp.start)
		}
		if len(pts) < 2 {
			continue
		}
		pl := Polyline(pts)
		res = append(res, &pl)
	}
	return res
}

// Clone implements the [Curve] interface.
func (b *Bezier) Clone() *Bezier {
	return &Bezier{
		Cmds:   slices.Clone(b.Cmds),
		Coords: slices.Clone(b.Coords),
	}
}

// Handles returns the straight lines connecting the end points of all curve
// segments to their control points.
func (b *Bezier) Handles() []*Polyline {
	var res []*Polyline
	line := func(a, b vec.Vec2) {
		pl := Polyline{a, b}
		res = append(res, &pl)
	}
	for _, sp := range b.subpaths() {
		current := sp.start
		for _, s := range sp.segs {
			switch s.cmd {
			case path.CmdQuadTo:
				line(current, s.pts[0])
				line(s.pts[0], s.pts[1])
			case path.CmdCubeTo:
				line(current, s.pts[0])
				line(s.pts[1], s.pts[2])
			}
			current = s.end()
		}
	}
	return res
}

func quadAt(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	omt := 1 - t
	return p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
}

func cubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
}

// quadExtrema returns the parameters in (0, 1) where one of the
// coordinates of the quadratic curve has a local extremum.
func quadExtrema(p0, p1, p2 vec.Vec2) []float64 {
	var ts []float64
	for _, c := range [][3]float64{{p0.X, p1.X, p2.X}, {p0.Y, p1.Y, p2.Y}} {
		den := c[0] - 2*c[1] + c[2]
		if den == 0 {
			continue
		}
		if t := (c[0] - c[1]) / den; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

// cubicExtrema returns the parameters in (0, 1) where one of the
// coordinates of the cubic curve has a local extremum.
func cubicExtrema(p0, p1, p2, p3 vec.Vec2) []float64 {
	var ts []float64
	coords := [][4]float64{{p0.X, p1.X, p2.X, p3.X}, {p0.Y, p1.Y, p2.Y, p3.Y}}
	for _, c := range coords {
		a := c[1] - c[0]
		b := c[2] - c[1]
		d := c[3] - c[2]
		// derivative/3 = (a - 2b + d)t² + 2(b - a)t + a
		for _, t := range solveQuadratic(a-2*b+d, 2*(b-a), a) {
			if t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
	}
	return ts
}

// solveQuadratic returns the real roots of a t² + b t + c = 0.
func solveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	// numerically stable form
	q := -0.5 * (b + math.Copysign(sq, b))
	if q == 0 {
		return []float64{0}
	}
	return []float64{q / a, c / q}
}
