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
	"bytes"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plotter"
	"seehuhn.de/go/plotter/testcases"
)

func redLine() *plotter.Document {
	doc := plotter.NewDocument(plotter.PageSize{W: 40, H: 20})
	doc.PushPath(1, &plotter.Path{
		Data: plotter.Line(vec.Vec2{X: 5, Y: 10}, vec.Vec2{X: 35, Y: 10}),
		Meta: plotter.PathMetadata{
			Color:       color.NRGBA{R: 255, A: 255},
			StrokeWidth: 4,
		},
	})
	return doc
}

func TestRender(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	cases := []struct {
		scale   float64
		w, h    int
		on, off [2]int
	}{
		{0, 40, 20, [2]int{20, 10}, [2]int{20, 2}},
		{1, 40, 20, [2]int{20, 10}, [2]int{2, 10}},
		{2, 80, 40, [2]int{40, 20}, [2]int{40, 4}},
		{0.5, 20, 10, [2]int{10, 5}, [2]int{10, 1}},
	}
	for _, c := range cases {
		img := Render(redLine(), &Options{Scale: c.scale})
		b := img.Bounds()
		if b.Dx() != c.w || b.Dy() != c.h {
			t.Errorf("scale %g: size %dx%d, expected %dx%d", c.scale, b.Dx(), b.Dy(), c.w, c.h)
			continue
		}
		if got := img.RGBAAt(c.on[0], c.on[1]); got != red {
			t.Errorf("scale %g: pixel %v is %v, expected red", c.scale, c.on, got)
		}
		if got := img.RGBAAt(c.off[0], c.off[1]); got != white {
			t.Errorf("scale %g: pixel %v is %v, expected white", c.scale, c.off, got)
		}
	}
}

func TestLayerDefaults(t *testing.T) {
	doc := plotter.NewDocument(plotter.PageSize{W: 20, H: 20})
	l := doc.GetMut(1)
	l.Meta.Defaults = plotter.PathMetadata{Color: color.NRGBA{B: 255, A: 255}, StrokeWidth: 6}
	l.PushPath(plotter.NewPath(plotter.Line(vec.Vec2{X: 2, Y: 10}, vec.Vec2{X: 18, Y: 10}).Data()))

	img := Render(doc, nil)
	// with the default width of 1 this pixel would stay white
	if got := img.RGBAAt(10, 8); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel is %v, expected blue", got)
	}
}

func TestBackground(t *testing.T) {
	doc := plotter.NewDocument(plotter.PageSize{W: 10, H: 10})
	img := Render(doc, &Options{Background: color.Black})
	if got := img.RGBAAt(5, 5); got != (color.RGBA{A: 255}) {
		t.Errorf("background is %v", got)
	}
}

func TestNoPageSize(t *testing.T) {
	doc := &plotter.Document{}
	doc.PushPath(1, plotter.NewPath(plotter.Rectangle(10, 20, 30, 15).Data()))
	img := Render(doc, nil)
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 15 {
		t.Errorf("size %dx%d, expected 30x15", b.Dx(), b.Dy())
	}

	img = Render(&plotter.Document{}, nil)
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("empty document: size %dx%d", b.Dx(), b.Dy())
	}
}

func TestPenUp(t *testing.T) {
	doc := plotter.NewDocument(plotter.PageSize{W: 40, H: 20})
	doc.PushPath(1,
		plotter.NewPath(plotter.Line(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 10, Y: 5}).Data()),
		plotter.NewPath(plotter.Line(vec.Vec2{X: 30, Y: 15}, vec.Vec2{X: 35, Y: 15}).Data()),
	)

	// the pen-up move from (10,5) to (30,15) passes through (20.5,10.25)
	plain := Render(doc, nil)
	if got := plain.RGBAAt(20, 10); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel is %v without pen-up moves", got)
	}
	moves := Render(doc, &Options{PenUp: color.RGBA{B: 255, A: 255}})
	if got := moves.RGBAAt(20, 10); got.B <= got.R {
		t.Errorf("pixel is %v with pen-up moves", got)
	}
}

func TestFlattened(t *testing.T) {
	doc := redLine()
	a := Render(doc, nil)
	b := Render(doc.Flatten(plotter.DefaultTolerance), nil)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("flattening a straight line changes the preview")
	}
}

func TestWriteFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.png")
	if err := WriteFile(fname, redLine(), &Options{Scale: 2}); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 40 {
		t.Errorf("size %dx%d, expected 80x40", b.Dx(), b.Dy())
	}

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "out.png"), redLine(), nil)
	if err == nil {
		t.Error("writing to a missing directory succeeded")
	}
}

// TestAllCases renders every test drawing and checks that ink was put on
// the page.
func TestAllCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if category == "large" {
				continue
			}
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				doc := fromTestCase(tc)
				img := Render(doc, nil)
				ink := 0
				for i := 0; i < len(img.Pix); i += 4 {
					if img.Pix[i] != 255 {
						ink++
					}
				}
				if ink == 0 {
					t.Error("nothing was drawn")
				}
			})
		}
	}
}

func fromTestCase(tc testcases.TestCase) *plotter.Document {
	doc := plotter.NewDocument(plotter.PageSize{W: tc.Width, H: tc.Height})
	for _, p := range tc.Paths {
		doc.PushPath(1, &plotter.Path{Data: plotter.NewBezier(p).Clone()})
	}
	return doc
}

// BenchmarkRenderAll renders all test drawings.
func BenchmarkRenderAll(b *testing.B) {
	var docs []*plotter.Document
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			docs = append(docs, fromTestCase(tc))
		}
	}

	for b.Loop() {
		for _, doc := range docs {
			Render(doc, nil)
		}
	}
}
