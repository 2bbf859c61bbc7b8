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

// Command genpdf writes every test case to a PDF file.  The paths are
// drawn in black, on a page of the size given by the test case.  Paths
// in the "hatch" category are hatched as well, and the control handles
// of curves are shown in light gray.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/plotter"
	"seehuhn.de/go/plotter/hatch"
	"seehuhn.de/go/plotter/plotpdf"
	"seehuhn.de/go/plotter/testcases"
)

const refDir = "testdata/pdf"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := generatePDF(category, tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(category string, tc testcases.TestCase, pdfPath string) error {
	doc := plotter.NewDocument(plotter.PageSize{W: tc.Width, H: tc.Height})
	l := doc.GetMut(1)
	for _, p := range tc.Paths {
		l.PushPath(&plotter.Path{Data: plotter.NewBezier(p).Clone()})
	}
	if category == "sort" {
		l.Sort(true)
	}

	fd := doc.Flatten(plotter.DefaultTolerance)
	handles := plotter.ControlHandles(doc).GetMut(1)
	for _, h := range handles.Paths {
		h.Meta = plotter.PathMetadata{Color: color.NRGBA{R: 192, G: 192, B: 192, A: 255}, StrokeWidth: 0.5}
	}
	*fd.GetMut(2) = *handles

	if category == "hatch" {
		spacing := min(tc.Width, tc.Height) / 40
		fd.PushPath(3, l.Hatch(hatch.DefaultParams(spacing), plotter.DefaultTolerance)...)
	}

	return plotpdf.WriteFile(pdfPath, fd, nil)
}
