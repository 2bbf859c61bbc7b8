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

	"seehuhn.de/go/geom/vec"
)

// flattenQuadratic approximates a quadratic Bézier curve by line segments
// and calls emit for the end point of each segment.  p0 is the start point
// (not emitted), p1 is the control point, p2 is the end point.
//
// The segment count follows from the bound |B(t) - L(t)| <= |p0 - 2p1 + p2|/4
// for the piecewise linear interpolant with n equal steps scaled by 1/n².
func flattenQuadratic(p0, p1, p2 vec.Vec2, tol float64, emit func(vec.Vec2)) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if dev := e.Length(); dev > tol {
		n = int(math.Ceil(math.Sqrt(dev / tol)))
	}
	n = min(n, maxFlattenSteps)

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
	emit(p2)
}

// flattenCubic approximates a cubic Bézier curve by line segments and calls
// emit for the end point of each segment.  p0 is the start point (not
// emitted), p1 and p2 are control points, p3 is the end point.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, tol float64, emit func(vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * max|d| / (4 * tol)))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * tol)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	n = min(n, maxFlattenSteps)

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		emit(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
	emit(p3)
}

// maxFlattenSteps bounds the number of line segments per curve segment, so
// that absurd tolerances cannot exhaust memory.
const maxFlattenSteps = 1 << 16
