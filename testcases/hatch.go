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

package testcases

import (
	"seehuhn.de/go/geom/path"
)

// hatchCases contains closed outlines for the hatching code.  Several of
// them have holes, formed by an inner subpath.
var hatchCases = []TestCase{
	{
		Name:   "square",
		Paths:  paths(rectangle(12, 12, 52, 52)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle",
		Paths:  paths(triangle(10, 50, 32, 10, 54, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star",
		Paths:  paths(fivePointStar(32, 32, 25)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Paths:  paths(circle(32, 32, 25)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring_shape",
		Paths:  paths(ringShape(32, 32, 25, 12)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "multiple_rings",
		Paths:  paths(multipleRings(64, 64)),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "two_triangles",
		Paths:  paths(twoTriangles(16, 32, 48, 32, 12)),
		Width:  64,
		Height: 64,
	},
}

// ringShape builds a square with a square hole.  Both subpaths run in the
// same direction, so the hole only appears with the even-odd rule.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	p := rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	q := rectangle(cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize)
	p.Cmds = append(p.Cmds, q.Cmds...)
	p.Coords = append(p.Coords, q.Coords...)
	return p
}

// multipleRings builds three square donuts in one compound path.
func multipleRings(cx, cy float64) *path.Data {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	p := &path.Data{}
	for _, ring := range rings {
		r := ringShape(ring.cx, ring.cy, ring.outer, ring.inner)
		p.Cmds = append(p.Cmds, r.Cmds...)
		p.Coords = append(p.Coords, r.Coords...)
	}
	return p
}

// twoTriangles builds two disjoint triangles in one compound path.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx1, cy1-size)).
		LineTo(pt(cx1+size, cy1+size)).
		LineTo(pt(cx1-size, cy1+size)).
		Close().
		MoveTo(pt(cx2, cy2-size)).
		LineTo(pt(cx2+size, cy2+size)).
		LineTo(pt(cx2-size, cy2+size)).
		Close()
}
