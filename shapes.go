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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the relative length of the control handles when approximating
// a quarter circle by a cubic Bézier curve.
const kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Line returns a straight line from a to b.
func Line(a, b vec.Vec2) *Bezier {
	return NewBezier((&path.Data{}).MoveTo(a).LineTo(b))
}

// Rectangle returns the closed outline of the rectangle with lower left
// corner (x, y), width w and height h.
func Rectangle(x, y, w, h float64) *Bezier {
	return NewBezier((&path.Data{}).
		MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close())
}

// Circle returns a circle around c with radius r, made from four cubic
// Bézier curves.  The curve starts and ends at the rightmost point.
func Circle(c vec.Vec2, r float64) *Bezier {
	return Ellipse(c, r, r)
}

// Ellipse returns an axis-aligned ellipse around c with radii rx and ry.
// The curve starts and ends at the rightmost point.
func Ellipse(c vec.Vec2, rx, ry float64) *Bezier {
	kx := rx * kappa
	ky := ry * kappa
	cx, cy := c.X, c.Y
	return NewBezier((&path.Data{}).
		MoveTo(vec.Vec2{X: cx + rx, Y: cy}).
		CubeTo(vec.Vec2{X: cx + rx, Y: cy + ky}, vec.Vec2{X: cx + kx, Y: cy + ry}, vec.Vec2{X: cx, Y: cy + ry}).
		CubeTo(vec.Vec2{X: cx - kx, Y: cy + ry}, vec.Vec2{X: cx - rx, Y: cy + ky}, vec.Vec2{X: cx - rx, Y: cy}).
		CubeTo(vec.Vec2{X: cx - rx, Y: cy - ky}, vec.Vec2{X: cx - kx, Y: cy - ry}, vec.Vec2{X: cx, Y: cy - ry}).
		CubeTo(vec.Vec2{X: cx + kx, Y: cy - ry}, vec.Vec2{X: cx + rx, Y: cy - ky}, vec.Vec2{X: cx + rx, Y: cy}).
		Close())
}

// Polygon returns the closed polygon through the given points.
func Polygon(pts ...vec.Vec2) *Bezier {
	p := &path.Data{}
	if len(pts) == 0 {
		return NewBezier(p)
	}
	p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return NewBezier(p.Close())
}
