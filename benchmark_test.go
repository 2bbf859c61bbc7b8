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
	"fmt"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/plotter/testcases"
)

// BenchmarkFlattenAll flattens every test drawing.
func BenchmarkFlattenAll(b *testing.B) {
	var docs []*Document
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			doc := NewDocument(PageSize{W: tc.Width, H: tc.Height})
			for _, p := range tc.Paths {
				doc.PushPath(1, &Path{Data: NewBezier(p).Clone()})
			}
			docs = append(docs, doc)
		}
	}

	b.ReportAllocs()
	for b.Loop() {
		for _, doc := range docs {
			doc.Flatten(DefaultTolerance)
		}
	}
}

func BenchmarkSort(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			orig := layerOf(testcases.RandomLines(n, 1000, 1000, uint64(n)))
			for b.Loop() {
				l := orig.Clone()
				l.Sort(true)
			}
		})
	}
}

func BenchmarkCrop(b *testing.B) {
	orig := layerOf(testcases.RandomLines(5000, 1000, 1000, 5))
	box := rect.Rect{LLx: 250, LLy: 250, URx: 750, URy: 750}
	for b.Loop() {
		l := orig.Clone()
		l.Crop(box)
	}
}
