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

// Package testcases provides shared geometry fixtures for the tests and
// benchmarks of the plotter packages, and for the commands which export
// the fixtures as SVG and PDF files.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase is a named drawing: a list of paths on a page of the given
// size, in CSS pixels.
type TestCase struct {
	Name   string       // lowercase a-z, 0-9 and _ only
	Paths  []*path.Data // the geometry, one entry per path
	Width  float64      // page width
	Height float64      // page height
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// paths collects its arguments into a slice.
func paths(ps ...*path.Data) []*path.Data {
	return ps
}
