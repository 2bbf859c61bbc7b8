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

package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1) has a diagonal edge y = x/10, so pixel x
// has coverage (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	r := newRasterizer(10, 1)
	r.addRing([]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 1}})

	coverage := make([]float32, 10)
	r.fill(func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

func TestOrientation(t *testing.T) {
	square := []vec.Vec2{{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 4}, {X: 1, Y: 4}}
	reversed := []vec.Vec2{square[3], square[2], square[1], square[0]}
	for _, ring := range [][]vec.Vec2{square, reversed} {
		r := newRasterizer(5, 5)
		r.addRing(ring)
		total := sum(r)
		if math.Abs(total-9) > 1e-4 {
			t.Errorf("area %g, expected 9", total)
		}
	}
}

func TestCapsule(t *testing.T) {
	const radius = 2
	want := 40*2*radius + math.Pi*radius*radius

	r := newRasterizer(60, 20)
	p := newPen(r, radius)
	p.stroke([]vec.Vec2{{X: 10, Y: 10}, {X: 50, Y: 10}})
	var inside, outside float32
	total := 0.0
	r.fill(func(y, xMin int, cov []float32) {
		for i, c := range cov {
			x := xMin + i
			switch {
			case x == 30 && y == 10:
				inside = c
			case x == 30 && y == 5:
				outside = c
			}
			total += float64(c)
		}
	})
	if inside < 0.999 {
		t.Errorf("coverage on the line: %g", inside)
	}
	if outside != 0 {
		t.Errorf("coverage away from the line: %g", outside)
	}
	if math.Abs(total-want)/want > 0.01 {
		t.Errorf("area %g, expected %g", total, want)
	}

	// a segment drawn twice covers the same area
	p.stroke([]vec.Vec2{{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 10, Y: 10}})
	twice := sum(r)
	if twice < total-1e-3 || twice > total*1.08 {
		t.Errorf("area of doubled stroke %g, single stroke %g", twice, total)
	}
}

func TestDot(t *testing.T) {
	r := newRasterizer(20, 20)
	newPen(r, 3).stroke([]vec.Vec2{{X: 10, Y: 10}})
	total := sum(r)
	want := math.Pi * 9
	if total > want || total < 0.95*want {
		t.Errorf("area %g, expected about %g", total, want)
	}
}

func TestClipped(t *testing.T) {
	// the square extends beyond the image on all sides
	r := newRasterizer(4, 3)
	r.addRing([]vec.Vec2{{X: -5, Y: -5}, {X: 10, Y: -5}, {X: 10, Y: 10}, {X: -5, Y: 10}})
	if total := sum(r); math.Abs(total-12) > 1e-4 {
		t.Errorf("area %g, expected 12", total)
	}

	r.addRing([]vec.Vec2{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 30}})
	if total := sum(r); total != 0 {
		t.Errorf("shape outside the image has area %g", total)
	}
}

// heptagon returns a convex polygon which covers most of a 40×40 image,
// with vertices at non-integer positions.
func heptagon() []vec.Vec2 {
	var pts []vec.Vec2
	for i := range 7 {
		phi := 2*math.Pi*float64(i)/7 + 0.1
		pts = append(pts, vec.Vec2{
			X: 20.3 + 15.2*math.Cos(phi),
			Y: 19.7 + 14.1*math.Sin(phi),
		})
	}
	return pts
}

// TestExactCoverage compares the coverage of a convex polygon with the
// area of its intersection with each pixel square.
func TestExactCoverage(t *testing.T) {
	const size = 40
	pts := heptagon()

	got := make([]float64, size*size)
	r := newRasterizer(size, size)
	r.addRing(pts)
	r.fill(func(y, xMin int, cov []float32) {
		for i, c := range cov {
			got[y*size+xMin+i] = float64(c)
		}
	})

	for y := range size {
		for x := range size {
			want := pixelArea(pts, float64(x), float64(y))
			if d := got[y*size+x] - want; math.Abs(d) > 1e-3 {
				t.Errorf("pixel (%d,%d): coverage %.5f, want %.5f", x, y, got[y*size+x], want)
			}
		}
	}
}

// pixelArea returns the area of the intersection of the convex polygon pts
// with the unit square at (x, y).
func pixelArea(pts []vec.Vec2, x, y float64) float64 {
	// signed distances, non-negative inside the square
	sides := []func(vec.Vec2) float64{
		func(p vec.Vec2) float64 { return p.X - x },
		func(p vec.Vec2) float64 { return x + 1 - p.X },
		func(p vec.Vec2) float64 { return p.Y - y },
		func(p vec.Vec2) float64 { return y + 1 - p.Y },
	}

	poly := pts
	for _, dist := range sides {
		if len(poly) == 0 {
			return 0
		}
		var out []vec.Vec2
		for i, a := range poly {
			b := poly[(i+1)%len(poly)]
			da, db := dist(a), dist(b)
			if da >= 0 {
				out = append(out, a)
			}
			if (da >= 0) != (db >= 0) {
				t := da / (da - db)
				out = append(out, a.Add(b.Sub(a).Mul(t)))
			}
		}
		poly = out
	}

	area := 0.0
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		area += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(area) / 2
}

// TestAgainstVector compares the coverage of a polygon with the result of
// golang.org/x/image/vector.  The latter accumulates in float32, so small
// deviations are expected.
func TestAgainstVector(t *testing.T) {
	const size = 40
	pts := heptagon()

	ours := image.NewAlpha(image.Rect(0, 0, size, size))
	r := newRasterizer(size, size)
	r.addRing(pts)
	r.fill(func(y, xMin int, cov []float32) {
		row := ours.Pix[y*ours.Stride+xMin:]
		for i, c := range cov {
			row[i] = uint8(math.Round(float64(c) * 255))
		}
	})

	theirs := image.NewAlpha(image.Rect(0, 0, size, size))
	z := vector.NewRasterizer(size, size)
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(theirs, theirs.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})

	for i := range ours.Pix {
		d := int(ours.Pix[i]) - int(theirs.Pix[i])
		if d < -6 || d > 6 {
			t.Errorf("pixel (%d,%d): %d != %d", i%size, i/size, ours.Pix[i], theirs.Pix[i])
		}
	}
}

func sum(r *rasterizer) float64 {
	total := 0.0
	r.fill(func(y, xMin int, cov []float32) {
		for _, c := range cov {
			total += float64(c)
		}
	})
	return total
}

func BenchmarkRasterizerO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := newRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			c := float64(size) / 2
			outer := circle(c, c, float64(size)*0.45, false)
			inner := circle(c, c, float64(size)*0.30, true)

			b.ReportAllocs()
			for b.Loop() {
				r.addRing(outer)
				r.addRing(inner)
				r.fill(func(y, xMin int, cov []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range cov {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			c := float64(size) / 2
			rings := [][]vec.Vec2{
				circle(c, c, float64(size)*0.45, false),
				circle(c, c, float64(size)*0.30, true),
			}

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				for _, ring := range rings {
					z.MoveTo(float32(ring[0].X), float32(ring[0].Y))
					for _, p := range ring[1:] {
						z.LineTo(float32(p.X), float32(p.Y))
					}
					z.ClosePath()
				}
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// circle approximates a circle by a polygon.  The orientation is reversed
// if clockwise is set.
func circle(cx, cy, radius float64, clockwise bool) []vec.Vec2 {
	const n = 64
	res := make([]vec.Vec2, n)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / n
		if clockwise {
			phi = -phi
		}
		res[i] = vec.Vec2{X: cx + radius*math.Cos(phi), Y: cy + radius*math.Sin(phi)}
	}
	return res
}
