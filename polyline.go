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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plotter/clip"
)

// Polyline is a single chain of points connected by straight lines.
// A polyline is closed if its first and last points coincide.
type Polyline []vec.Vec2

// NewPolyline returns a polyline through the given points.
func NewPolyline(pts ...vec.Vec2) *Polyline {
	pl := Polyline(slices.Clone(pts))
	return &pl
}

// Points returns the points of the polyline.
func (p *Polyline) Points() []vec.Vec2 {
	return *p
}

// Bounds implements the [Curve] interface.
func (p *Polyline) Bounds() (rect.Rect, bool) {
	if len(*p) == 0 {
		return rect.Rect{}, false
	}
	first := (*p)[0]
	r := rect.Rect{LLx: first.X, LLy: first.Y, URx: first.X, URy: first.Y}
	for _, pt := range (*p)[1:] {
		r.Add(pt.X, pt.Y)
	}
	return r, true
}

// Start implements the [Curve] interface.
func (p *Polyline) Start() (vec.Vec2, bool) {
	if len(*p) == 0 {
		return vec.Vec2{}, false
	}
	return (*p)[0], true
}

// End implements the [Curve] interface.
func (p *Polyline) End() (vec.Vec2, bool) {
	if len(*p) == 0 {
		return vec.Vec2{}, false
	}
	return (*p)[len(*p)-1], true
}

// IsPoint implements the [Curve] interface.
func (p *Polyline) IsPoint() bool {
	if len(*p) == 0 {
		return false
	}
	p0 := (*p)[0]
	for _, pt := range (*p)[1:] {
		if dist(pt, p0) > SamePointEpsilon {
			return false
		}
	}
	return true
}

// IsClosed implements the [Curve] interface.
func (p *Polyline) IsClosed(eps float64) bool {
	return len(*p) > 0 && dist((*p)[0], (*p)[len(*p)-1]) <= eps
}

// Flip implements the [Curve] interface.
func (p *Polyline) Flip() {
	slices.Reverse(*p)
}

// Join implements the [Curve] interface.  A polyline cannot represent a
// gap, so the two chains are always connected by a straight line,
// whatever the value of eps.  If the end of p and the start of other
// coincide, the duplicate point is dropped.
func (p *Polyline) Join(other *Polyline, eps float64) {
	if other == nil || len(*other) == 0 {
		return
	}
	pts := *other
	if len(*p) > 0 && dist((*p)[len(*p)-1], pts[0]) <= SamePointEpsilon {
		pts = pts[1:]
	}
	*p = append(*p, pts...)
}

// Split implements the [Curve] interface.  Polylines have no subpaths, so
// the result contains p itself.
func (p *Polyline) Split() []*Polyline {
	return []*Polyline{p}
}

// Transform implements the [Curve] interface.
func (p *Polyline) Transform(m matrix.Matrix) {
	for i, pt := range *p {
		(*p)[i] = Apply(m, pt)
	}
}

// Crop implements the [Curve] interface.  Every stretch of the polyline
// inside r becomes a separate polyline.
func (p *Polyline) Crop(r rect.Rect) []*Polyline {
	runs := clip.Polyline(*p, r)
	res := make([]*Polyline, len(runs))
	for i, run := range runs {
		pl := Polyline(run)
		res[i] = &pl
	}
	return res
}

// Flatten implements the [Curve] interface.  The result is a copy of p.
func (p *Polyline) Flatten(float64) []*Polyline {
	if len(*p) == 0 {
		return nil
	}
	return []*Polyline{p.Clone()}
}

// Clone implements the [Curve] interface.
func (p *Polyline) Clone() *Polyline {
	pl := slices.Clone(*p)
	return &pl
}

// Bezier converts the polyline into a vector curve made of line segments.
// A closed polyline ends in a close command.
func (p *Polyline) Bezier() *Bezier {
	pts := *p
	if len(pts) == 0 {
		return &Bezier{}
	}
	closed := len(pts) > 2 && pts[0] == pts[len(pts)-1]
	if closed {
		pts = pts[:len(pts)-1]
	}

	d := &path.Data{}
	d.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		d.LineTo(pt)
	}
	if closed {
		d.Close()
	}
	return NewBezier(d)
}
