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

// Command export writes every test case to an SVG file, for inspection
// with an SVG viewer or Inkscape, and to a PNG preview at twice the
// page resolution.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/plotter"
	"seehuhn.de/go/plotter/preview"
	"seehuhn.de/go/plotter/svg"
	"seehuhn.de/go/plotter/testcases"
)

const outDir = "testdata"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fname := filepath.Join(outDir, name+".svg")
			doc := toDocument(name, tc)
			if err := svg.WriteFile(fname, doc, nil); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			fname = filepath.Join(outDir, name+".png")
			if err := preview.WriteFile(fname, doc, &preview.Options{Scale: 2}); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// toDocument puts all paths of tc into layer 1.  The output does not
// contain a date, so that repeated runs give identical files.
func toDocument(name string, tc testcases.TestCase) *plotter.Document {
	doc := plotter.NewDocument(plotter.PageSize{W: tc.Width, H: tc.Height})
	doc.Meta.Source = "testcases/" + name
	l := doc.GetMut(1)
	l.Meta.Name = name
	for _, p := range tc.Paths {
		l.PushPath(&plotter.Path{Data: plotter.NewBezier(p).Clone()})
	}
	return doc
}
