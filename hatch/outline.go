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

package hatch

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// outlines returns the rings of the fill area as closed polylines, moved
// by d towards the inside of the area.  For a hole this means moving the
// ring outwards.  Rings which vanish under the offset are dropped, as are
// rings whose mitred offset would fold over itself.
func outlines(rings [][]vec.Vec2, d float64) [][]vec.Vec2 {
	var res [][]vec.Vec2
	for _, ring := range rings {
		pts := cleanRing(ring)
		if len(pts) < 3 || math.Abs(signedArea(pts)) <= degenerate {
			continue
		}
		if d > 0 {
			pts = offsetRing(pts, rings, d)
			if pts == nil {
				continue
			}
		}
		res = append(res, append(pts, pts[0]))
	}
	return res
}

// cleanRing returns a copy of ring without repeated consecutive points.
// An explicit closing point is removed.
func cleanRing(ring []vec.Vec2) []vec.Vec2 {
	var pts []vec.Vec2
	for _, q := range ring {
		if len(pts) > 0 && q.Sub(pts[len(pts)-1]).Length() <= degenerate {
			continue
		}
		pts = append(pts, q)
	}
	for len(pts) > 1 && pts[0].Sub(pts[len(pts)-1]).Length() <= degenerate {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// offsetRing moves every edge of pts by d towards the inside of the area
// enclosed by rings and joins the moved edges with mitres.  The result is
// nil if an edge changes direction in the process.
func offsetRing(pts []vec.Vec2, rings [][]vec.Vec2, d float64) []vec.Vec2 {
	n := len(pts)

	// Find the side of the ring on which the area lies, using a point
	// next to the middle of the longest edge.
	longest, best := 0, -1.0
	for i := range n {
		if l := pts[(i+1)%n].Sub(pts[i]).Length(); l > best {
			longest, best = i, l
		}
	}
	a, b := pts[longest], pts[(longest+1)%n]
	sample := a.Add(b).Mul(0.5).Add(leftNormal(b.Sub(a)).Mul(min(d, best) * 1e-3))
	side := 1.0
	if !insideEvenOdd(sample, rings) {
		side = -1
	}

	// shifts[i] moves edge i, from pts[i] to pts[i+1]
	shifts := make([]vec.Vec2, n)
	for i := range n {
		shifts[i] = leftNormal(pts[(i+1)%n].Sub(pts[i])).Mul(side * d)
	}

	res := make([]vec.Vec2, n)
	for i := range n {
		prev := (i + n - 1) % n
		u := pts[i].Sub(pts[prev])
		v := pts[(i+1)%n].Sub(pts[i])
		p := pts[prev].Add(shifts[prev])
		q := pts[i].Add(shifts[i])
		c := cross(u, v)
		if math.Abs(c) <= 1e-12*u.Length()*v.Length() {
			res[i] = q
			continue
		}
		t := cross(q.Sub(p), v) / c
		res[i] = p.Add(u.Mul(t))
	}

	for i := range n {
		orig := pts[(i+1)%n].Sub(pts[i])
		moved := res[(i+1)%n].Sub(res[i])
		if orig.X*moved.X+orig.Y*moved.Y <= 0 {
			return nil
		}
	}
	return res
}

// leftNormal returns v turned by 90 degrees counter-clockwise, scaled to
// unit length.
func leftNormal(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	return vec.Vec2{X: -v.Y / l, Y: v.X / l}
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func signedArea(pts []vec.Vec2) float64 {
	area := 0.0
	for i, a := range pts {
		area += cross(a, pts[(i+1)%len(pts)])
	}
	return area / 2
}

// insideEvenOdd reports whether p lies inside the area enclosed by rings,
// using the even-odd rule.
func insideEvenOdd(p vec.Vec2, rings [][]vec.Vec2) bool {
	inside := false
	for _, ring := range rings {
		n := len(ring)
		for i := range n {
			a, b := ring[i], ring[(i+1)%n]
			if (a.Y > p.Y) == (b.Y > p.Y) {
				continue
			}
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if x > p.X {
				inside = !inside
			}
		}
	}
	return inside
}
