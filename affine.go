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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Concat returns the transformation which applies first, then then.
func Concat(first, then matrix.Matrix) matrix.Matrix {
	return first.Mul(then)
}

// Apply maps the point p through m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// Det returns the determinant of the linear part of m.
func Det(m matrix.Matrix) float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) matrix.Matrix {
	return matrix.Translate(dx, dy)
}

// Scale returns a scaling about the origin.
func Scale(sx, sy float64) matrix.Matrix {
	return matrix.Scale(sx, sy)
}

// ScaleUniform returns a uniform scaling about the origin.
func ScaleUniform(s float64) matrix.Matrix {
	return Scale(s, s)
}

// ScaleAround returns a scaling which keeps the point (cx, cy) fixed.
func ScaleAround(sx, sy, cx, cy float64) matrix.Matrix {
	return around(Scale(sx, sy), cx, cy)
}

// Rotate returns a rotation about the origin by theta radians.
// With the y-axis pointing down, as in SVG, positive angles turn clockwise.
func Rotate(theta float64) matrix.Matrix {
	return matrix.Rotate(theta)
}

// RotateAround returns a rotation by theta radians about (cx, cy).
func RotateAround(theta, cx, cy float64) matrix.Matrix {
	return around(Rotate(theta), cx, cy)
}

// Skew returns a shear with angle ax along the x-axis and ay along the
// y-axis, both in radians.
func Skew(ax, ay float64) matrix.Matrix {
	return matrix.Matrix{1, math.Tan(ay), math.Tan(ax), 1, 0, 0}
}

func around(m matrix.Matrix, cx, cy float64) matrix.Matrix {
	return matrix.Translate(-cx, -cy).Mul(m).Translate(cx, cy)
}
