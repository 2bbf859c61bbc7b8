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

// sortCases contain layers whose path order can be improved.
var sortCases = []TestCase{
	{
		// circles of radius 1 around (0,0), (100,0) and (50,50)
		Name: "three_circles",
		Paths: paths(
			circle(0, 0, 1),
			circle(100, 0, 1),
			circle(50, 50, 1),
		),
		Width:  110,
		Height: 60,
	},
	{
		Name:   "reversed_lines",
		Paths:  reversedLines(20, 10, 200),
		Width:  220,
		Height: 220,
	},
	{
		Name:   "random_lines",
		Paths:  RandomLines(500, 200, 200, 1),
		Width:  200,
		Height: 200,
	},
	{
		Name:   "scattered_circles",
		Paths:  scatteredCircles(12, 8, 16),
		Width:  200,
		Height: 140,
	},
}

// reversedLines builds n horizontal lines, every second one drawn right to
// left, listed in reverse vertical order.
func reversedLines(n int, gap, width float64) []*path.Data {
	res := make([]*path.Data, n)
	for i := range n {
		y := 10 + float64(n-1-i)*gap
		if i%2 == 0 {
			res[i] = segment(10, y, 10+width, y)
		} else {
			res[i] = segment(10+width, y, 10, y)
		}
	}
	return res
}

// scatteredCircles builds a grid of circles, listed in an order which
// jumps across the grid.
func scatteredCircles(cols, rows int, step float64) []*path.Data {
	n := cols * rows
	res := make([]*path.Data, 0, n)
	// 7 is coprime to every grid size used here
	for i := range n {
		k := (i * 7) % n
		col, row := k%cols, k/cols
		res = append(res, circle(10+float64(col)*step, 10+float64(row)*step, step/3))
	}
	return res
}
