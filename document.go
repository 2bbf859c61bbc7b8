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
	"iter"
	"maps"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// LayerID identifies a layer within a document.
type LayerID int

// DocumentOf is a sparse collection of layers, indexed by layer ID.
// Iteration is always in ascending order of IDs.
//
// The zero value is an empty document, ready to use.
type DocumentOf[C Curve[C]] struct {
	Meta   DocumentMetadata
	layers map[LayerID]*LayerOf[C]
}

// Document is a document holding vector geometry.
type Document = DocumentOf[*Bezier]

// FlattenedDocument is a document holding polylines.  Flattened documents
// are derived from a [Document] and are not converted back.
type FlattenedDocument = DocumentOf[*Polyline]

// NewDocument returns an empty document with the given page size.  Use
// the zero PageSize if the page size is unknown.
func NewDocument(size PageSize) *Document {
	return &Document{Meta: DocumentMetadata{PageSize: size}}
}

// GetMut returns the layer with the given ID.  If no such layer exists, an
// empty layer is created first.
func (d *DocumentOf[C]) GetMut(id LayerID) *LayerOf[C] {
	if d.layers == nil {
		d.layers = make(map[LayerID]*LayerOf[C])
	}
	l, ok := d.layers[id]
	if !ok {
		l = &LayerOf[C]{}
		d.layers[id] = l
	}
	return l
}

// Layer returns the layer with the given ID, if it exists.
func (d *DocumentOf[C]) Layer(id LayerID) (*LayerOf[C], bool) {
	l, ok := d.layers[id]
	return l, ok
}

// Delete removes a layer from the document.
func (d *DocumentOf[C]) Delete(id LayerID) {
	delete(d.layers, id)
}

// IDs returns the IDs of all layers, in ascending order.
func (d *DocumentOf[C]) IDs() []LayerID {
	return slices.Sorted(maps.Keys(d.layers))
}

// Layers iterates over the layers in ascending order of IDs.
func (d *DocumentOf[C]) Layers() iter.Seq2[LayerID, *LayerOf[C]] {
	return func(yield func(LayerID, *LayerOf[C]) bool) {
		for _, id := range d.IDs() {
			if !yield(id, d.layers[id]) {
				return
			}
		}
	}
}

// NumLayers returns the number of layers.
func (d *DocumentOf[C]) NumLayers() int {
	return len(d.layers)
}

// PushPath appends paths to the layer with the given ID, creating the
// layer if needed.
func (d *DocumentOf[C]) PushPath(id LayerID, paths ...*PathOf[C]) {
	d.GetMut(id).PushPath(paths...)
}

// Bounds returns the bounding box of all geometry in the document.  The
// second return value is false if the document contains no geometry.
func (d *DocumentOf[C]) Bounds() (rect.Rect, bool) {
	var res rect.Rect
	found := false
	for _, l := range d.layers {
		r, ok := l.Bounds()
		if !ok {
			continue
		}
		if found {
			res.Add(r.LLx, r.LLy)
			res.Add(r.URx, r.URy)
		} else {
			res = r
			found = true
		}
	}
	return res, found
}

// ForEach calls f for every layer, in ascending order of IDs.
func (d *DocumentOf[C]) ForEach(f func(LayerID, *LayerOf[C])) {
	for id, l := range d.Layers() {
		f(id, l)
	}
}

// Stats returns the statistics of every layer.
func (d *DocumentOf[C]) Stats() map[LayerID]LayerStats {
	res := make(map[LayerID]LayerStats, len(d.layers))
	for id, l := range d.layers {
		res[id] = l.Stats()
	}
	return res
}

// Transform applies m to all layers.  The page size is not changed.
func (d *DocumentOf[C]) Transform(m matrix.Matrix) {
	for _, l := range d.layers {
		l.Transform(m)
	}
}

// Crop removes everything outside r from all layers.
func (d *DocumentOf[C]) Crop(r rect.Rect) {
	for _, l := range d.layers {
		l.Crop(r)
	}
}

// Flatten returns an independent copy of the document in which all
// geometry is converted into polylines with the given tolerance.
func (d *DocumentOf[C]) Flatten(tol float64) *FlattenedDocument {
	res := &FlattenedDocument{Meta: d.Meta}
	if d.Meta.Source != "" {
		res.Meta.Source = d.Meta.Source + " (flattened)"
	}
	for id, l := range d.layers {
		fl := l.Flatten(tol)
		*res.GetMut(id) = *fl
	}
	return res
}

// CenterContent moves the geometry so that its bounding box is centred on
// the page.  If no page size is set, the geometry is moved so that its
// bounding box starts at the origin.
func (d *DocumentOf[C]) CenterContent() {
	r, ok := d.Bounds()
	if !ok {
		return
	}
	var dx, dy float64
	if size := d.Meta.PageSize; !size.IsZero() {
		dx = (size.W-(r.URx-r.LLx))/2 - r.LLx
		dy = (size.H-(r.URy-r.LLy))/2 - r.LLy
	} else {
		dx, dy = -r.LLx, -r.LLy
	}
	d.Transform(Translate(dx, dy))
}

// Clone returns a deep copy of the document.
func (d *DocumentOf[C]) Clone() *DocumentOf[C] {
	res := &DocumentOf[C]{Meta: d.Meta}
	for id, l := range d.layers {
		*res.GetMut(id) = *l.Clone()
	}
	return res
}

// ControlHandles returns a document showing the control handles of all
// curves in doc, layer by layer.
func ControlHandles(doc *Document) *FlattenedDocument {
	res := &FlattenedDocument{Meta: doc.Meta}
	for id, l := range doc.layers {
		fl := res.GetMut(id)
		fl.Meta = l.Meta
		for _, p := range l.Paths {
			for _, h := range p.Data.Handles() {
				fl.PushPath(&FlattenedPath{Data: h, Meta: p.Meta})
			}
		}
	}
	return res
}

// FromFlattened converts a flattened document back into a document with
// vector geometry made of straight line segments.
func FromFlattened(fd *FlattenedDocument) *Document {
	res := &Document{Meta: fd.Meta}
	for id, fl := range fd.layers {
		l := res.GetMut(id)
		l.Meta = fl.Meta
		for _, p := range fl.Paths {
			l.PushPath(&Path{Data: p.Data.Bezier(), Meta: p.Meta})
		}
	}
	return res
}
