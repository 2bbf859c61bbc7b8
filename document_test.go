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

package plotter

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/plotter/testcases"
)

func TestGetMut(t *testing.T) {
	var doc Document
	if doc.NumLayers() != 0 {
		t.Fatal("zero document has layers")
	}
	if _, ok := doc.Layer(5); ok {
		t.Error("Layer creates layers")
	}

	l := doc.GetMut(5)
	l.Meta.Name = "five"
	if doc.NumLayers() != 1 {
		t.Errorf("%d layers", doc.NumLayers())
	}
	if again := doc.GetMut(5); again != l || again.Meta.Name != "five" {
		t.Error("GetMut does not return the existing layer")
	}

	doc.Delete(5)
	if doc.NumLayers() != 0 {
		t.Error("layer was not deleted")
	}
}

func TestLayerOrder(t *testing.T) {
	doc := NewDocument(A4)
	for _, id := range []LayerID{7, 2, 5, 0} {
		doc.PushPath(id, &Path{Data: Line(pt(0, 0), pt(float64(id), 1))})
	}

	want := []LayerID{0, 2, 5, 7}
	if got := doc.IDs(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	var seen []LayerID
	for id := range doc.Layers() {
		seen = append(seen, id)
	}
	if !slices.Equal(seen, want) {
		t.Errorf("iteration order %v", seen)
	}
	seen = seen[:0]
	doc.ForEach(func(id LayerID, l *Layer) {
		seen = append(seen, id)
		if len(l.Paths) != 1 {
			t.Errorf("layer %d has %d paths", id, len(l.Paths))
		}
	})
	if !slices.Equal(seen, want) {
		t.Errorf("ForEach order %v", seen)
	}

	// stopping early
	n := 0
	for range doc.Layers() {
		n++
		break
	}
	if n != 1 {
		t.Error("iteration does not stop")
	}
}

func TestDocumentBounds(t *testing.T) {
	doc := &Document{}
	if _, ok := doc.Bounds(); ok {
		t.Error("empty document has bounds")
	}
	doc.GetMut(1)
	if _, ok := doc.Bounds(); ok {
		t.Error("document with an empty layer has bounds")
	}
	doc.PushPath(1, &Path{Data: Rectangle(0, 0, 10, 10)})
	doc.PushPath(3, &Path{Data: Circle(pt(20, 5), 5)})
	got, _ := doc.Bounds()
	if want := (rect.Rect{URx: 25, URy: 10}); !nearRect(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// A single point at the origin has an all-zero box, which must still
	// count as geometry.
	dot := &Document{}
	dot.PushPath(1, &Path{Data: Line(pt(0, 0), pt(0, 0))})
	dot.PushPath(2, &Path{Data: Line(pt(5, 5), pt(6, 7))})
	got, _ = dot.Bounds()
	if want := (rect.Rect{URx: 6, URy: 7}); !nearRect(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	fd := dot.Flatten(DefaultTolerance)
	got, _ = fd.Bounds()
	if want := (rect.Rect{URx: 6, URy: 7}); !nearRect(got, want) {
		t.Errorf("flattened: got %v, want %v", got, want)
	}
}

func TestDocumentFlatten(t *testing.T) {
	doc := NewDocument(A4)
	doc.Meta.Source = "drawing.svg"
	l := doc.GetMut(2)
	l.Meta = LayerMetadata{Name: "two", Defaults: PathMetadata{Color: red}}
	l.PushPath(&Path{Data: Circle(pt(50, 50), 20)})

	fd := doc.Flatten(0.1)
	if fd.Meta.Source != "drawing.svg (flattened)" {
		t.Errorf("source %q", fd.Meta.Source)
	}
	if fd.Meta.PageSize != A4 {
		t.Errorf("page size %v", fd.Meta.PageSize)
	}
	fl, ok := fd.Layer(2)
	if !ok || fl.Meta.Name != "two" || len(fl.Paths) != 1 {
		t.Fatal("layer was not flattened")
	}
	if want := (PathMetadata{Color: red, StrokeWidth: DefaultStrokeWidth}); fl.Paths[0].Meta != want {
		t.Errorf("got %v, want %v", fl.Paths[0].Meta, want)
	}

	// the original is unchanged
	fl.Paths[0].Transform(Translate(100, 0))
	if r, _ := doc.Bounds(); r.URx > 71 {
		t.Error("flattened document shares geometry")
	}

	if got := (&Document{}).Flatten(0).Meta.Source; got != "" {
		t.Errorf("empty source becomes %q", got)
	}
}

func TestCenterContent(t *testing.T) {
	doc := NewDocument(PageSize{W: 100, H: 100})
	doc.PushPath(1, &Path{Data: Rectangle(0, 0, 10, 20)})
	doc.CenterContent()
	got, _ := doc.Bounds()
	if want := (rect.Rect{LLx: 45, LLy: 40, URx: 55, URy: 60}); !nearRect(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	doc = &Document{}
	doc.PushPath(1, &Path{Data: Rectangle(10, 20, 5, 5)})
	doc.CenterContent()
	got, _ = doc.Bounds()
	if want := (rect.Rect{URx: 5, URy: 5}); !nearRect(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// nothing to do
	(&Document{}).CenterContent()
}

func TestDocumentCrop(t *testing.T) {
	tc := findCase("crop", "large_rectangle")
	doc := NewDocument(PageSize{W: tc.Width, H: tc.Height})
	for _, p := range tc.Paths {
		doc.PushPath(1, &Path{Data: NewBezier(p).Clone()})
	}
	box := rect.Rect{URx: tc.Width, URy: tc.Height}
	doc.Crop(box)
	got, ok := doc.Bounds()
	if !ok {
		t.Fatal("nothing left")
	}
	if got.LLx < -1e-9 || got.LLy < -1e-9 || got.URx > tc.Width+1e-9 || got.URy > tc.Height+1e-9 {
		t.Errorf("bounds %v after cropping to %v", got, box)
	}
}

func TestDocumentClone(t *testing.T) {
	doc := NewDocument(A4)
	doc.PushPath(1, &Path{Data: Line(pt(0, 0), pt(1, 1))})
	c := doc.Clone()
	c.Transform(Translate(10, 10))
	c.GetMut(2)
	if doc.NumLayers() != 1 {
		t.Error("clone shares the layer map")
	}
	if s, _ := doc.GetMut(1).Paths[0].Start(); s != pt(0, 0) {
		t.Error("clone shares geometry")
	}
}

func TestControlHandles(t *testing.T) {
	doc := NewDocument(A4)
	doc.PushPath(1, &Path{Data: Circle(pt(0, 0), 10), Meta: PathMetadata{Color: red}})
	doc.PushPath(4, &Path{Data: Rectangle(0, 0, 1, 1)})

	hd := ControlHandles(doc)
	if !slices.Equal(hd.IDs(), []LayerID{1, 4}) {
		t.Errorf("layers %v", hd.IDs())
	}
	l, _ := hd.Layer(1)
	if len(l.Paths) != 8 {
		t.Errorf("%d handles", len(l.Paths))
	}
	for _, p := range l.Paths {
		if p.Meta.Color != red {
			t.Errorf("handle has attributes %v", p.Meta)
		}
	}
	if l, _ := hd.Layer(4); len(l.Paths) != 0 {
		t.Errorf("rectangle has %d handles", len(l.Paths))
	}
}

func TestFromFlattened(t *testing.T) {
	doc := NewDocument(A4)
	doc.PushPath(1, &Path{Data: Circle(pt(0, 0), 10)})
	back := FromFlattened(doc.Flatten(0.5))
	l, ok := back.Layer(1)
	if !ok || len(l.Paths) != 1 {
		t.Fatal("layer lost")
	}
	if !l.Paths[0].IsClosed() {
		t.Error("circle is no longer closed")
	}
	if len(l.Paths[0].Data.Handles()) != 0 {
		t.Error("flattened geometry has curves")
	}
}

func TestDocumentStats(t *testing.T) {
	doc := &Document{}
	for _, p := range findCase("sort", "random_lines").Paths {
		doc.PushPath(1, &Path{Data: NewBezier(p).Clone()})
	}
	doc.PushPath(2, &Path{Data: Line(pt(0, 0), pt(1, 0))})

	stats := doc.Stats()
	if len(stats) != 2 || stats[1].NumPaths != 500 || stats[2].NumPaths != 1 {
		t.Errorf("stats %v", stats)
	}
	if stats[2].PenUpLength != 0 {
		t.Errorf("single path has pen-up length %g", stats[2].PenUpLength)
	}

	before := stats[1].PenUpLength
	doc.GetMut(1).Sort(true)
	if after := doc.Stats()[1].PenUpLength; after >= before {
		t.Errorf("sorting gives pen-up length %g, was %g", after, before)
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	l := layerOf(testcases.RandomLines(20, 100, 100, 1))
	l.Sort(false)
	if !strings.Contains(buf.String(), "path order") {
		t.Errorf("no log record: %q", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	l.Sort(true)
	if buf.Len() != 0 {
		t.Error("logging after reset")
	}
	if Logger() == nil {
		t.Error("no default logger")
	}
}
