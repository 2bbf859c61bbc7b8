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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plotter/hatch"
	"seehuhn.de/go/plotter/optimize"
)

// LayerOf is an ordered list of paths.  The order of the paths is the
// order in which a plotter draws them.
type LayerOf[C Curve[C]] struct {
	Paths []*PathOf[C]
	Meta  LayerMetadata
}

// Layer is a layer of vector paths.
type Layer = LayerOf[*Bezier]

// FlattenedLayer is a layer of polylines.
type FlattenedLayer = LayerOf[*Polyline]

// LayerStats summarises a layer.
type LayerStats struct {
	// NumPaths is the number of paths in the layer.
	NumPaths int

	// PenUpLength is the distance travelled with the pen lifted, from the
	// end of each path to the start of the next.
	PenUpLength float64
}

// PushPath appends paths to the layer.
func (l *LayerOf[C]) PushPath(paths ...*PathOf[C]) {
	l.Paths = append(l.Paths, paths...)
}

// Bounds returns the bounding box of all paths in the layer.  The second
// return value is false if the layer contains no geometry.
func (l *LayerOf[C]) Bounds() (rect.Rect, bool) {
	var res rect.Rect
	found := false
	for _, p := range l.Paths {
		r, ok := p.Bounds()
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

// endpoints returns the start and end points of all paths, as used by
// the optimize package.
func (l *LayerOf[C]) endpoints() []optimize.Endpoints {
	ends := make([]optimize.Endpoints, len(l.Paths))
	for i, p := range l.Paths {
		s, ok1 := p.Start()
		e, ok2 := p.End()
		ends[i] = optimize.Endpoints{Start: s, End: e, Ok: ok1 && ok2}
	}
	return ends
}

// Stats returns the number of paths and the pen-up distance of the layer.
func (l *LayerOf[C]) Stats() LayerStats {
	ends := l.endpoints()
	order := make([]optimize.Step, len(ends))
	for i := range order {
		order[i].Index = i
	}
	return LayerStats{
		NumPaths:    len(l.Paths),
		PenUpLength: optimize.PenUp(ends, order),
	}
}

// PenUpTrajectories returns the straight pen-up moves between consecutive
// paths, as pairs of start and end point.  Empty paths are skipped.
func (l *LayerOf[C]) PenUpTrajectories() [][2]vec.Vec2 {
	var res [][2]vec.Vec2
	var last vec.Vec2
	haveLast := false
	for _, p := range l.Paths {
		start, ok1 := p.Start()
		end, ok2 := p.End()
		if !ok1 || !ok2 {
			continue
		}
		if haveLast {
			res = append(res, [2]vec.Vec2{last, start})
		}
		last = end
		haveLast = true
	}
	return res
}

// Transform applies m to all paths in the layer.  Stroke widths are not
// changed.
func (l *LayerOf[C]) Transform(m matrix.Matrix) {
	for _, p := range l.Paths {
		p.Transform(m)
	}
}

// Crop replaces every path by its parts inside r.  Paths entirely
// outside r are removed.
func (l *LayerOf[C]) Crop(r rect.Rect) {
	var res []*PathOf[C]
	for _, p := range l.Paths {
		res = append(res, p.Crop(r)...)
	}
	l.Paths = res
}

// Flatten returns an independent copy of the layer in which every path is
// converted into polylines.  Unset path attributes are resolved against
// the layer defaults.
func (l *LayerOf[C]) Flatten(tol float64) *FlattenedLayer {
	res := &FlattenedLayer{Meta: l.Meta}
	for _, p := range l.Paths {
		for _, fp := range p.Flatten(tol) {
			fp.Meta = fp.Meta.Resolve(l.Meta.Defaults)
			res.Paths = append(res.Paths, fp)
		}
	}
	return res
}

// Explode splits every compound path into one path per subpath.  This
// exposes the end points of all subpaths to JoinPaths and Optimize.
func (l *LayerOf[C]) Explode() {
	var res []*PathOf[C]
	for _, p := range l.Paths {
		res = append(res, p.Split()...)
	}
	l.Paths = res
}

// Sort reorders the paths to reduce pen-up travel, starting from the
// origin.  If flip is true, paths may be reversed.
func (l *LayerOf[C]) Sort(flip bool) {
	l.Optimize(&optimize.Options{Flip: flip})
}

// Optimize reorders the paths to reduce pen-up travel.  The result is a
// permutation of the original paths, some of them possibly reversed, and
// never has a larger pen-up distance than the original order.
func (l *LayerOf[C]) Optimize(opt *optimize.Options) {
	if len(l.Paths) < 2 {
		return
	}
	steps := optimize.Order(l.endpoints(), opt)
	res := make([]*PathOf[C], len(steps))
	for i, s := range steps {
		p := l.Paths[s.Index]
		if s.Flip {
			p.Flip()
		}
		res[i] = p
	}
	l.Paths = res
}

// JoinPaths merges paths whose end and start points are at most tol
// apart.  If flip is true, paths may be reversed to make them fit.  Each
// merged path keeps the attributes of its first member.
func (l *LayerOf[C]) JoinPaths(tol float64, flip bool) {
	if len(l.Paths) < 2 {
		return
	}
	chains := optimize.Chains(l.endpoints(), tol, flip)
	res := make([]*PathOf[C], 0, len(chains))
	for _, chain := range chains {
		var head *PathOf[C]
		for _, s := range chain {
			p := l.Paths[s.Index]
			if s.Flip {
				p.Flip()
			}
			if head == nil {
				head = p
			} else {
				head.Join(p, tol)
			}
		}
		res = append(res, head)
	}
	l.Paths = res
}

// PromoteMetadata moves attributes which all paths share into the layer
// defaults, and clears them on the paths.
func (l *LayerOf[C]) PromoteMetadata() {
	if len(l.Paths) == 0 {
		return
	}
	shared := l.Paths[0].Meta.Resolve(l.Meta.Defaults)
	for _, p := range l.Paths[1:] {
		shared = shared.merge(p.Meta.Resolve(l.Meta.Defaults))
	}
	if shared.Color != (color.NRGBA{}) {
		l.Meta.Defaults.Color = shared.Color
		for _, p := range l.Paths {
			p.Meta.Color = color.NRGBA{}
		}
	}
	if shared.StrokeWidth != 0 {
		l.Meta.Defaults.StrokeWidth = shared.StrokeWidth
		for _, p := range l.Paths {
			p.Meta.StrokeWidth = 0
		}
	}
}

// Hatch fills all paths of the layer with parallel lines and returns the
// hatch lines.  The layer itself is not modified.
func (l *LayerOf[C]) Hatch(params hatch.Params, tol float64) []*FlattenedPath {
	var res []*FlattenedPath
	for _, p := range l.Paths {
		res = append(res, p.Hatch(params, tol)...)
	}
	return res
}

// Clone returns a deep copy of the layer.
func (l *LayerOf[C]) Clone() *LayerOf[C] {
	res := &LayerOf[C]{Meta: l.Meta, Paths: make([]*PathOf[C], len(l.Paths))}
	for i, p := range l.Paths {
		res.Paths[i] = p.Clone()
	}
	return res
}
