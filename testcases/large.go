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
	"fmt"
	"math/rand/v2"

	"seehuhn.de/go/geom/path"
)

// largeCases contain many paths, to exercise the spatial indexes of the
// path order optimiser.
var largeCases = []TestCase{
	{
		Name:   "grid",
		Paths:  rectangleGrid(32, 32, 512, 512, 4),
		Width:  512,
		Height: 512,
	},
	Large(5000),
}

// Large returns a test case with n random short lines on a square page.
// The result is deterministic.
func Large(n int) TestCase {
	return TestCase{
		Name:   fmt.Sprintf("random_%d", n),
		Paths:  RandomLines(n, 1000, 1000, uint64(n)),
		Width:  1000,
		Height: 1000,
	}
}

// RandomLines returns n short straight lines in the rectangle [0,w]x[0,h],
// generated from the given seed.
func RandomLines(n int, w, h float64, seed uint64) []*path.Data {
	rng := rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
	maxLen := min(w, h) / 20
	res := make([]*path.Data, n)
	for i := range res {
		x0 := rng.Float64() * w
		y0 := rng.Float64() * h
		x1 := min(max(x0+(rng.Float64()*2-1)*maxLen, 0), w)
		y1 := min(max(y0+(rng.Float64()*2-1)*maxLen, 0), h)
		res[i] = segment(x0, y0, x1, y1)
	}
	return res
}

// rectangleGrid builds a grid of rectangles, one path per rectangle,
// listed row by row.
func rectangleGrid(rows, cols int, width, height float64, gap float64) []*path.Data {
	cellW := width / float64(cols)
	cellH := height / float64(rows)

	res := make([]*path.Data, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			res = append(res, rectangle(x1, y1, x2, y2))
		}
	}
	return res
}
