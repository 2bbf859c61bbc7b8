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

// cropCases contain geometry crossing the page boundary, for crop tests
// with the page rectangle.
var cropCases = []TestCase{
	{
		Name:   "line_across",
		Paths:  paths(segment(-5, 0, 5, 0), segment(-10, 5, 20, 5)),
		Width:  10,
		Height: 10,
	},
	{
		Name:   "circle_at_corner",
		Paths:  paths(circle(0, 0, 20)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "wave",
		Paths:  paths(cubicCurveOpen(-10, 32, 20, -40, 44, 104, 74, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_out",
		Paths:  paths(quadraticCurveOpen(4, 60, 32, -40, 60, 60)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "large_rectangle",
		Paths:  paths(rectangle(-100, 16, 164, 48)),
		Width:  64,
		Height: 64,
	},
}
