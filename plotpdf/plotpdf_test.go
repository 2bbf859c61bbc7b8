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

package plotpdf

import (
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plotter"
)

func TestWriteFile(t *testing.T) {
	doc := plotter.NewDocument(plotter.A5)
	doc.PushPath(1,
		&plotter.Path{Data: plotter.Circle(vec.Vec2{X: 100, Y: 100}, 50)},
		&plotter.Path{
			Data: plotter.Line(vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 200, Y: 300}),
			Meta: plotter.PathMetadata{Color: color.NRGBA{R: 255, A: 255}, StrokeWidth: 3},
		},
	)
	flat := doc.Flatten(0.1)

	cases := []struct {
		name  string
		write func(string) error
	}{
		{"document", func(fname string) error { return WriteFile(fname, doc, nil) }},
		{"flattened", func(fname string) error { return WriteFile(fname, flat, &Options{Margin: 10}) }},
		{"empty", func(fname string) error { return WriteFile(fname, &plotter.Document{}, nil) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fname := filepath.Join(t.TempDir(), tc.name+".pdf")
			if err := tc.write(fname); err != nil {
				t.Fatal(err)
			}
			data, err := os.ReadFile(fname)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Errorf("output does not start with a PDF header")
			}
		})
	}
}

func TestWriteFileError(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "out.pdf")
	if err := WriteFile(fname, &plotter.Document{}, nil); err == nil {
		t.Error("no error for an unwritable file name")
	}
}

func TestGray(t *testing.T) {
	cases := []struct {
		c    color.NRGBA
		want float64
	}{
		{color.NRGBA{A: 255}, 0},
		{color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 1},
		{color.NRGBA{}, 1},
		{color.NRGBA{A: 51}, 0.8},
		{color.NRGBA{R: 255, A: 255}, 0.299},
	}
	for _, tc := range cases {
		if got := gray(tc.c); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("gray(%v) = %g, want %g", tc.c, got, tc.want)
		}
	}
}
