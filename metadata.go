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
)

// Global defaults for path attributes which are set neither on the path
// nor on its layer.
var (
	DefaultColor       = color.NRGBA{A: 255}
	DefaultStrokeWidth = 1.0
)

// PathMetadata holds the drawing attributes of a path.
//
// The zero value of each field means "unset": the value is then taken
// from the layer defaults, and finally from [DefaultColor] and
// [DefaultStrokeWidth].
type PathMetadata struct {
	Color       color.NRGBA
	StrokeWidth float64
}

// IsZero reports whether no attribute is set.
func (m PathMetadata) IsZero() bool {
	return m == PathMetadata{}
}

// Resolve returns the attributes used for drawing, with every unset value
// replaced by the corresponding value from defaults or, if that is unset
// too, by the global default.
func (m PathMetadata) Resolve(defaults PathMetadata) PathMetadata {
	res := m
	if res.Color == (color.NRGBA{}) {
		res.Color = defaults.Color
	}
	if res.Color == (color.NRGBA{}) {
		res.Color = DefaultColor
	}
	if res.StrokeWidth == 0 {
		res.StrokeWidth = defaults.StrokeWidth
	}
	if res.StrokeWidth == 0 {
		res.StrokeWidth = DefaultStrokeWidth
	}
	return res
}

// Override returns the attributes of m which differ from the resolved
// defaults.  The result resolves to the same values as m.
func (m PathMetadata) Override(defaults PathMetadata) PathMetadata {
	base := PathMetadata{}.Resolve(defaults)
	own := m.Resolve(defaults)
	var res PathMetadata
	if own.Color != base.Color {
		res.Color = own.Color
	}
	if own.StrokeWidth != base.StrokeWidth {
		res.StrokeWidth = own.StrokeWidth
	}
	return res
}

// merge keeps the attributes which are equal in m and other.
func (m PathMetadata) merge(other PathMetadata) PathMetadata {
	var res PathMetadata
	if m.Color == other.Color {
		res.Color = m.Color
	}
	if m.StrokeWidth == other.StrokeWidth {
		res.StrokeWidth = m.StrokeWidth
	}
	return res
}

// LayerMetadata describes a layer.
type LayerMetadata struct {
	// Name is the human readable name of the layer.  It may be empty.
	Name string

	// Defaults are used for path attributes which are unset on the path.
	Defaults PathMetadata
}

// Merge combines the metadata of two layers.  Attributes which are equal
// in both are kept, all others are unset in the result.
func (m LayerMetadata) Merge(other LayerMetadata) LayerMetadata {
	var res LayerMetadata
	if m.Name == other.Name {
		res.Name = m.Name
	}
	res.Defaults = m.Defaults.merge(other.Defaults)
	return res
}

// DocumentMetadata describes a document.
type DocumentMetadata struct {
	// PageSize is the size of the drawing area.  The zero value means that
	// no page size is set.
	PageSize PageSize

	// Source describes where the document came from.
	Source string

	// IncludeDate controls whether the SVG output contains a time stamp.
	// Disable this to get reproducible output.
	IncludeDate bool
}

// PageSize is the size of a page in CSS pixels (96 per inch).
type PageSize struct {
	W, H float64
}

// Paper sizes in portrait orientation.
var (
	A5      = PageSize{W: 148 * pxPerMM, H: 210 * pxPerMM}
	A4      = PageSize{W: 210 * pxPerMM, H: 297 * pxPerMM}
	A3      = PageSize{W: 297 * pxPerMM, H: 420 * pxPerMM}
	Letter  = PageSize{W: 8.5 * pxPerIn, H: 11 * pxPerIn}
	Legal   = PageSize{W: 8.5 * pxPerIn, H: 14 * pxPerIn}
	Tabloid = PageSize{W: 11 * pxPerIn, H: 17 * pxPerIn}
)

// IsZero reports whether the page size is unset.
func (s PageSize) IsZero() bool {
	return s.W == 0 && s.H == 0
}

// Landscape returns the page size with the longer side horizontal.
func (s PageSize) Landscape() PageSize {
	if s.H > s.W {
		return PageSize{W: s.H, H: s.W}
	}
	return s
}

// Portrait returns the page size with the longer side vertical.
func (s PageSize) Portrait() PageSize {
	if s.W > s.H {
		return PageSize{W: s.H, H: s.W}
	}
	return s
}
