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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Curve is the contract shared by the two curve representations, [*Bezier]
// and [*Polyline].  The type parameter is the implementing type itself, so
// that Join, Split and Crop stay within one representation.
//
// All algorithms on paths, layers and documents are written against this
// interface and work for both representations.
type Curve[C any] interface {
	// Bounds returns the axis-aligned bounding box of the curve.
	// The second return value is false for an empty curve.
	Bounds() (rect.Rect, bool)

	// Start returns the first point of the curve.
	Start() (vec.Vec2, bool)

	// End returns the point where the pen is lifted after drawing the curve.
	End() (vec.Vec2, bool)

	// IsPoint reports whether the curve is non-empty and all of its points
	// coincide.
	IsPoint() bool

	// IsClosed reports whether start and end are at most eps apart.
	IsClosed(eps float64) bool

	// Flip reverses the direction of travel in place.
	Flip()

	// Join appends other to the curve.  If the end of the curve and the
	// start of other are at most eps apart, the two are connected.
	Join(other C, eps float64)

	// Split returns one curve per subpath.
	Split() []C

	// Transform maps all points of the curve through m.
	Transform(m matrix.Matrix)

	// Crop returns the parts of the curve which lie inside r.
	Crop(r rect.Rect) []C

	// Flatten converts the curve into polylines, one per subpath.  Every
	// point of the result is within tol of the curve.
	Flatten(tol float64) []*Polyline

	// Clone returns a deep copy.
	Clone() C
}

var (
	_ Curve[*Bezier]   = (*Bezier)(nil)
	_ Curve[*Polyline] = (*Polyline)(nil)
)

// dist returns the Euclidean distance between a and b.
func dist(a, b vec.Vec2) float64 {
	return a.Sub(b).Length()
}
