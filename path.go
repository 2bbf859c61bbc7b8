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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plotter/hatch"
)

// PathOf is a curve together with its drawing attributes.
type PathOf[C Curve[C]] struct {
	Data C
	Meta PathMetadata
}

// Path is a path holding vector geometry.
type Path = PathOf[*Bezier]

// FlattenedPath is a path holding a polyline.
type FlattenedPath = PathOf[*Polyline]

// NewPath returns a path with the given geometry and unset attributes.
// The path shares storage with d.
func NewPath(d *path.Data) *Path {
	return &Path{Data: NewBezier(d)}
}

// NewFlattenedPath returns a polyline path through the given points.
func NewFlattenedPath(pts []vec.Vec2) *FlattenedPath {
	return &FlattenedPath{Data: NewPolyline(pts...)}
}

// Bounds returns the bounding box of the path geometry.
func (p *PathOf[C]) Bounds() (rect.Rect, bool) {
	return p.Data.Bounds()
}

// Start returns the point where drawing of the path begins.
func (p *PathOf[C]) Start() (vec.Vec2, bool) {
	return p.Data.Start()
}

// End returns the point where the pen is lifted after the path.
func (p *PathOf[C]) End() (vec.Vec2, bool) {
	return p.Data.End()
}

// IsPoint reports whether the path degenerates to a single location.
func (p *PathOf[C]) IsPoint() bool {
	return p.Data.IsPoint()
}

// IsClosed reports whether the path ends where it starts.
func (p *PathOf[C]) IsClosed() bool {
	return p.Data.IsClosed(SamePointEpsilon)
}

// Flip reverses the direction of the path.
func (p *PathOf[C]) Flip() {
	p.Data.Flip()
}

// Join appends the geometry of other.  The attributes of p are kept.
func (p *PathOf[C]) Join(other *PathOf[C], eps float64) {
	p.Data.Join(other.Data, eps)
}

// Split returns one path per subpath, each with the attributes of p.
func (p *PathOf[C]) Split() []*PathOf[C] {
	return p.wrap(p.Data.Split())
}

// Transform applies m to the geometry of the path.
func (p *PathOf[C]) Transform(m matrix.Matrix) {
	p.Data.Transform(m)
}

// Crop returns the parts of the path inside r, each with the attributes
// of p.
func (p *PathOf[C]) Crop(r rect.Rect) []*PathOf[C] {
	return p.wrap(p.Data.Crop(r))
}

// Flatten converts the path into polylines with the given tolerance.
func (p *PathOf[C]) Flatten(tol float64) []*FlattenedPath {
	pls := p.Data.Flatten(tol)
	res := make([]*FlattenedPath, len(pls))
	for i, pl := range pls {
		res[i] = &FlattenedPath{Data: pl, Meta: p.Meta}
	}
	return res
}

// Hatch fills the area enclosed by the path with parallel lines.  The
// geometry is flattened with tolerance tol first.  The resulting paths
// carry the attributes of p.
func (p *PathOf[C]) Hatch(params hatch.Params, tol float64) []*FlattenedPath {
	var rings [][]vec.Vec2
	for _, pl := range p.Data.Flatten(tol) {
		rings = append(rings, pl.Points())
	}
	lines := hatch.Fill(rings, params)
	res := make([]*FlattenedPath, len(lines))
	for i, line := range lines {
		pl := Polyline(line)
		res[i] = &FlattenedPath{Data: &pl, Meta: p.Meta}
	}
	return res
}

// Clone returns a deep copy of the path.
func (p *PathOf[C]) Clone() *PathOf[C] {
	return &PathOf[C]{Data: p.Data.Clone(), Meta: p.Meta}
}

func (p *PathOf[C]) wrap(curves []C) []*PathOf[C] {
	if len(curves) == 0 {
		return nil
	}
	res := make([]*PathOf[C], len(curves))
	for i, c := range curves {
		res[i] = &PathOf[C]{Data: c, Meta: p.Meta}
	}
	return res
}
