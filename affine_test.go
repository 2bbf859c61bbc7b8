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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func TestAffine(t *testing.T) {
	cases := []struct {
		name    string
		m       matrix.Matrix
		in, out vec.Vec2
	}{
		{"translate", Translate(1, 2), pt(3, 4), pt(4, 6)},
		{"scale", Scale(2, 3), pt(1, 1), pt(2, 3)},
		{"uniform", ScaleUniform(-1), pt(1, 2), pt(-1, -2)},
		{"scale around", ScaleAround(2, 2, 1, 1), pt(0, 0), pt(-1, -1)},
		{"rotate", Rotate(math.Pi / 2), pt(1, 0), pt(0, 1)},
		{"rotate around", RotateAround(math.Pi, 1, 1), pt(0, 0), pt(2, 2)},
		{"skew x", Skew(math.Pi/4, 0), pt(0, 1), pt(1, 1)},
		{"skew y", Skew(0, math.Pi/4), pt(1, 0), pt(1, 1)},
		{"translate then scale", Concat(Translate(1, 0), Scale(2, 2)), pt(0, 0), pt(2, 0)},
		{"scale then translate", Concat(Scale(2, 2), Translate(1, 0)), pt(0, 0), pt(1, 0)},
		{"identity", matrix.Identity, pt(5, 7), pt(5, 7)},
	}
	for _, c := range cases {
		got := Apply(c.m, c.in)
		if !nearPoint(got, c.out) {
			t.Errorf("%s: %v -> %v, want %v", c.name, c.in, got, c.out)
		}
	}
}

func TestConcatOrder(t *testing.T) {
	a := Rotate(0.3)
	b := Translate(5, -2)
	c := Scale(2, 0.5)
	p := pt(1.5, -0.7)

	want := Apply(c, Apply(b, Apply(a, p)))
	if got := Apply(Concat(Concat(a, b), c), p); !nearPoint(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := Apply(Concat(a, Concat(b, c)), p); !nearPoint(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDet(t *testing.T) {
	cases := []struct {
		m    matrix.Matrix
		want float64
	}{
		{Scale(2, 3), 6},
		{Rotate(1.2), 1},
		{Translate(7, 8), 1},
		{Scale(-1, 1), -1},
		{Skew(0.5, 0), 1},
	}
	for i, c := range cases {
		if got := Det(c.m); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%d: got %g, want %g", i, got, c.want)
		}
	}
}
