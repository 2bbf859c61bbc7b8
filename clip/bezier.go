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

package clip

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// cubicAt evaluates the cubic Bézier curve with control points c at t.
func cubicAt(c [4]vec.Vec2, t float64) vec.Vec2 {
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return c[0].Mul(omt2 * omt).Add(c[1].Mul(3 * omt2 * t)).Add(c[2].Mul(3 * omt * t2)).Add(c[3].Mul(t2 * t))
}

// splitAt divides a cubic curve at parameter t using de Casteljau's
// algorithm.
func splitAt(c [4]vec.Vec2, t float64) (left, right [4]vec.Vec2) {
	p01 := lerp(c[0], c[1], t)
	p12 := lerp(c[1], c[2], t)
	p23 := lerp(c[2], c[3], t)
	p012 := lerp(p01, p12, t)
	p123 := lerp(p12, p23, t)
	p0123 := lerp(p012, p123, t)
	return [4]vec.Vec2{c[0], p01, p012, p0123}, [4]vec.Vec2{p0123, p123, p23, c[3]}
}

// subdivide returns the control points of the part of c between the
// parameters a < b.
func subdivide(c [4]vec.Vec2, a, b float64) [4]vec.Vec2 {
	if b < 1 {
		c, _ = splitAt(c, b)
	}
	if a > 0 {
		_, c = splitAt(c, a/b)
	}
	return c
}

// quadToCubic returns the two control points of the cubic curve which
// traces the same curve as the quadratic p0, p1, p2.
func quadToCubic(p0, p1, p2 vec.Vec2) (c1, c2 vec.Vec2) {
	c1 = p0.Add(p1.Sub(p0).Mul(2.0 / 3.0))
	c2 = p2.Add(p1.Sub(p2).Mul(2.0 / 3.0))
	return c1, c2
}

// solveCubic returns the real roots of a t³ + b t² + c t + d = 0.
func solveCubic(a, b, c, d float64) []float64 {
	scale := math.Abs(b) + math.Abs(c) + math.Abs(d)
	if math.Abs(a) <= 1e-12*scale || a == 0 {
		return solveQuadratic(b, c, d)
	}

	// depressed cubic x³ + px + q = 0 with t = x - B/3
	B, C, D := b/a, c/a, d/a
	p := C - B*B/3
	q := 2*B*B*B/27 - B*C/3 + D
	shift := -B / 3

	var roots []float64
	disc := q*q/4 + p*p*p/27
	switch {
	case math.Abs(disc) < 1e-14:
		u := math.Cbrt(-q / 2)
		roots = []float64{2*u + shift, -u + shift}
	case disc > 0:
		s := math.Sqrt(disc)
		roots = []float64{math.Cbrt(-q/2+s) + math.Cbrt(-q/2-s) + shift}
	default:
		m := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (p * m)
		theta := math.Acos(max(-1, min(1, arg))) / 3
		for k := range 3 {
			roots = append(roots, m*math.Cos(theta-2*math.Pi*float64(k)/3)+shift)
		}
	}

	// polish with a few Newton steps
	for i, t := range roots {
		for range 3 {
			f := ((a*t+b)*t+c)*t + d
			df := (3*a*t+2*b)*t + c
			if df == 0 {
				break
			}
			t -= f / df
		}
		roots[i] = t
	}
	return roots
}

// solveQuadratic returns the real roots of a t² + b t + c = 0.
func solveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
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
	q := -0.5 * (b + math.Copysign(sq, b))
	if q == 0 {
		return []float64{0}
	}
	return []float64{q / a, c / q}
}
