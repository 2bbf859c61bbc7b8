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
	"image"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

func square(x0, y0, size float64) []vec.Vec2 {
	return []vec.Vec2{
		{X: x0, Y: y0},
		{X: x0 + size, Y: y0},
		{X: x0 + size, Y: y0 + size},
		{X: x0, Y: y0 + size},
	}
}

func circle(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.Vec2{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)}
	}
	return pts
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		h, s float64
	}{
		{10, 2},
		{10, 3},
		{7.5, 1},
		{1, 2},
		{100, 0.7},
	}
	for _, tc := range tests {
		ring := []vec.Vec2{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: tc.h}, {X: 0, Y: tc.h}}
		lines := Fill([][]vec.Vec2{ring}, Params{Spacing: tc.s})

		lo := int(math.Floor(tc.h / tc.s))
		if len(lines) < lo || len(lines) > lo+1 {
			t.Errorf("h=%g, s=%g: got %d lines, want %d or %d",
				tc.h, tc.s, len(lines), lo, lo+1)
		}
		for _, line := range lines {
			if len(line) != 2 {
				t.Fatalf("hatch line has %d points", len(line))
			}
			for _, q := range line {
				if q.X < 0 || q.X > 20 || q.Y < 0 || q.Y > tc.h {
					t.Errorf("end point %v outside the bounding box", q)
				}
			}
		}
	}
}

func TestSquare(t *testing.T) {
	lines := Fill([][]vec.Vec2{square(0, 0, 10)}, Params{Spacing: 2})
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		y := 1 + 2*float64(i)
		want := []vec.Vec2{{X: 0, Y: y}, {X: 10, Y: y}}
		if line[0] != want[0] || line[1] != want[1] {
			t.Errorf("line %d: got %v, want %v", i, line, want)
		}
	}
}

func TestInset(t *testing.T) {
	lines := Fill([][]vec.Vec2{square(0, 0, 10)}, Params{Spacing: 2, Inset: true})
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for _, line := range lines {
		if line[0].X != 1 || line[1].X != 9 {
			t.Errorf("inset line %v should run from x=1 to x=9", line)
		}
	}

	// a shape narrower than the spacing is eroded completely
	lines = Fill([][]vec.Vec2{square(0, 0, 2)}, DefaultParams(4))
	if len(lines) != 0 {
		t.Errorf("got %d lines for a fully eroded shape", len(lines))
	}
}

func TestHole(t *testing.T) {
	rings := [][]vec.Vec2{square(0, 0, 10), square(3, 3, 4)}
	lines := Fill(rings, Params{Spacing: 1})

	// scan lines at y=0.5, 1.5, ..., 9.5; the four through the hole are split
	if len(lines) != 14 {
		t.Fatalf("got %d lines, want 14", len(lines))
	}
	for _, line := range lines {
		y := line[0].Y
		if y < 3 || y > 7 {
			continue
		}
		for _, q := range line {
			if q.X > 3 && q.X < 7 {
				t.Errorf("line %v enters the hole", line)
			}
		}
	}
}

func TestJoinLines(t *testing.T) {
	lines := Fill([][]vec.Vec2{square(0, 0, 10)}, Params{Spacing: 2, Inset: true, JoinLines: true})
	if len(lines) != 1 {
		t.Fatalf("got %d chains, want 1", len(lines))
	}
	if len(lines[0]) != 10 {
		t.Errorf("chain has %d points, want 10", len(lines[0]))
	}

	// connections must not run across a hole
	rings := [][]vec.Vec2{square(0, 0, 10), square(3, 3, 4)}
	for _, line := range Fill(rings, DefaultParams(1)) {
		for i := 0; i+1 < len(line); i++ {
			a, b := line[i], line[i+1]
			mid := vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
			if mid.X > 3 && mid.X < 7 && mid.Y > 3 && mid.Y < 7 {
				t.Errorf("segment %v-%v crosses the hole", a, b)
			}
		}
	}
}

func TestOutline(t *testing.T) {
	lines := Fill([][]vec.Vec2{square(0, 0, 10)}, DefaultParams(2))
	if len(lines) != 2 {
		t.Fatalf("got %d polylines, want outline and one chain", len(lines))
	}
	want := []vec.Vec2{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 9, Y: 9}, {X: 1, Y: 9}, {X: 1, Y: 1}}
	if !nearAll(lines[0], want) {
		t.Errorf("outline %v, want %v", lines[0], want)
	}

	// without inset the outline is the shape itself
	lines = Fill([][]vec.Vec2{square(0, 0, 10)}, Params{Spacing: 2, Outline: true})
	want = append(square(0, 0, 10), vec.Vec2{})
	if len(lines) != 6 || !nearAll(lines[0], want) {
		t.Errorf("got %d polylines, outline %v", len(lines), lines[0])
	}

	// the outline of a hole moves outwards; an explicit closing point
	// is not duplicated
	hole := append(square(3, 3, 4), vec.Vec2{X: 3, Y: 3})
	lines = Fill([][]vec.Vec2{square(0, 0, 10), hole}, DefaultParams(1))
	if len(lines) < 2 {
		t.Fatalf("got %d polylines", len(lines))
	}
	want = []vec.Vec2{{X: 2.5, Y: 2.5}, {X: 7.5, Y: 2.5}, {X: 7.5, Y: 7.5}, {X: 2.5, Y: 7.5}, {X: 2.5, Y: 2.5}}
	if !nearAll(lines[1], want) {
		t.Errorf("hole outline %v, want %v", lines[1], want)
	}

	// a triangle too small for the offset loses its outline
	tiny := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	if lines := Fill([][]vec.Vec2{tiny}, DefaultParams(2)); len(lines) != 0 {
		t.Errorf("got %v for an eroded triangle", lines)
	}
}

func nearAll(got, want []vec.Vec2) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i].Sub(want[i]).Length() > 1e-9 {
			return false
		}
	}
	return true
}

func TestAngle(t *testing.T) {
	angle := math.Pi / 4
	lines := Fill([][]vec.Vec2{square(0, 0, 10)}, Params{Spacing: 1, Angle: angle})
	if len(lines) == 0 {
		t.Fatal("no hatch lines")
	}
	const eps = 1e-9
	for _, line := range lines {
		a, b := line[0], line[1]
		for _, q := range line {
			if q.X < -eps || q.X > 10+eps || q.Y < -eps || q.Y > 10+eps {
				t.Errorf("end point %v outside the bounding box", q)
			}
		}
		d := b.Sub(a)
		if math.Abs(d.X*math.Sin(angle)-d.Y*math.Cos(angle)) > eps*d.Length()+eps {
			t.Errorf("line %v is not at the hatch angle", line)
		}
	}
}

func TestDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		rings [][]vec.Vec2
		p     Params
	}{
		{"zero spacing", [][]vec.Vec2{square(0, 0, 10)}, Params{Spacing: 0}},
		{"negative spacing", [][]vec.Vec2{square(0, 0, 10)}, Params{Spacing: -1}},
		{"NaN spacing", [][]vec.Vec2{square(0, 0, 10)}, Params{Spacing: math.NaN()}},
		{"no rings", nil, DefaultParams(1)},
		{"single point", [][]vec.Vec2{{{X: 1, Y: 1}}}, DefaultParams(1)},
		{"flat", [][]vec.Vec2{{{X: 0, Y: 1}, {X: 10, Y: 1}}}, Params{Spacing: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if lines := Fill(tc.rings, tc.p); len(lines) != 0 {
				t.Errorf("got %d lines, want none", len(lines))
			}
		})
	}
}

// TestCoverage checks the hatch lines against an independent rasterisation
// of the outline: every point on a hatch line must be in a pixel covered
// by the shape.
func TestCoverage(t *testing.T) {
	const size = 100
	ring := circle(50, 50, 40, 64)
	hole := circle(55, 45, 10, 32)

	// The rasterizer uses the non-zero winding rule.  Reversing the hole
	// makes this agree with the even-odd rule for our input.
	holeRev := slices.Clone(hole)
	slices.Reverse(holeRev)

	r := vector.NewRasterizer(size, size)
	for _, rg := range [][]vec.Vec2{ring, holeRev} {
		r.MoveTo(float32(rg[0].X), float32(rg[0].Y))
		for _, q := range rg[1:] {
			r.LineTo(float32(q.X), float32(q.Y))
		}
		r.ClosePath()
	}
	img := image.NewAlpha(image.Rect(0, 0, size, size))
	r.Draw(img, img.Bounds(), image.Opaque, image.Point{})

	for _, angle := range []float64{0, 0.3, math.Pi / 2, 2} {
		lines := Fill([][]vec.Vec2{ring, hole}, Params{Spacing: 2, Angle: angle, Inset: true})
		if len(lines) < 30 {
			t.Fatalf("angle %g: only %d hatch lines", angle, len(lines))
		}
		for _, line := range lines {
			a, b := line[0], line[1]
			for i := 1; i < 20; i++ {
				q := a.Add(b.Sub(a).Mul(float64(i) / 20))
				if img.AlphaAt(int(q.X), int(q.Y)).A == 0 {
					t.Errorf("angle %g: point %v is outside the shape", angle, q)
				}
			}
		}
	}
}
