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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var shapeCases = []TestCase{
	{
		Name:   "quadratic",
		Paths:  paths(quadraticCurve(10, 50, 32, 10, 54, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic",
		Paths:  paths(cubicCurve(10, 50, 20, 10, 44, 10, 54, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_scurve",
		Paths:  paths(cubicCurve(10, 50, 10, 10, 54, 54, 54, 14)), // inflection point
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_s_shape",
		Paths:  paths(sCurveQuadratic(10, 32, 54, 32)),
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
		Name:   "ellipse",
		Paths:  paths(ellipse(64, 32, 50, 20)),
		Width:  128,
		Height: 64,
	},
	{
		Name:   "arc",
		Paths:  paths(arc(32, 32, 25, 0, 0.75)),
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
		Name: "mixed",
		Paths: paths(
			rectangle(4, 4, 28, 28),
			circle(46, 16, 12),
			quadraticCurveOpen(4, 60, 18, 36, 32, 60),
			cubicCurveOpen(36, 60, 40, 36, 56, 36, 60, 60),
		),
		Width:  64,
		Height: 64,
	},
}

// quadraticCurve builds a closed shape with one quadratic segment.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// quadraticCurveOpen builds an open quadratic curve.
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubicCurve builds a closed shape with one cubic segment.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// cubicCurveOpen builds an open cubic curve.
func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurveQuadratic builds an S-shaped curve from two quadratic segments.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2))
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
// The curve starts at the rightmost point.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// arc builds a pie slice covering whole quadrants from startFraction to
// endFraction of a full circle.
func arc(cx, cy, r float64, startFraction, endFraction float64) *path.Data {
	k := r * kappa

	numQuadrants := min(max(int((endFraction-startFraction)*4), 1), 4)

	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))
	quadrants := [][3][2]float64{
		{{cx + r, cy + k}, {cx + k, cy + r}, {cx, cy + r}},
		{{cx - k, cy + r}, {cx - r, cy + k}, {cx - r, cy}},
		{{cx - r, cy - k}, {cx - k, cy - r}, {cx, cy - r}},
		{{cx + k, cy - r}, {cx + r, cy - k}, {cx + r, cy}},
	}
	for _, q := range quadrants[:numQuadrants] {
		p = p.CubeTo(pt(q[0][0], q[0][1]), pt(q[1][0], q[1][1]), pt(q[2][0], q[2][1]))
	}
	return p.Close()
}
