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

package svg

import (
	"encoding/xml"
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plotter"
)

// attrReader reads numeric attributes, keeping the first error.
type attrReader struct {
	attrs []xml.Attr
	err   error
}

func attrValue(attrs []xml.Attr, space, local string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == local && a.Name.Space == space {
			return a.Value, true
		}
	}
	return "", false
}

func (r *attrReader) lengthOK(name string) (float64, bool) {
	v, ok := attrValue(r.attrs, "", name)
	if !ok || r.err != nil {
		return 0, false
	}
	x, err := plotter.ParseLength(v)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", name, err)
		return 0, false
	}
	return x, true
}

func (r *attrReader) length(name string) float64 {
	x, _ := r.lengthOK(name)
	return x
}

// shapeFunc converts the attributes of an element into path data in the
// element's user space.  A nil result means that nothing is drawn.
type shapeFunc func(attrs []xml.Attr) (*path.Data, error)

func rectF(attrs []xml.Attr) (*path.Data, error) {
	r := &attrReader{attrs: attrs}
	x, y := r.length("x"), r.length("y")
	w, h := r.length("width"), r.length("height")
	rx, hasRx := r.lengthOK("rx")
	ry, hasRy := r.lengthOK("ry")
	if r.err != nil {
		return nil, r.err
	}
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	switch {
	case hasRx && !hasRy:
		ry = rx
	case hasRy && !hasRx:
		rx = ry
	}
	rx = min(max(rx, 0), w/2)
	ry = min(max(ry, 0), h/2)
	if rx == 0 || ry == 0 {
		return plotter.Rectangle(x, y, w, h).Data(), nil
	}

	d := &path.Data{}
	d.MoveTo(vec.Vec2{X: x + rx, Y: y})
	corner := func(from, to vec.Vec2) {
		arcTo(d, from, rx, ry, 0, false, true, to)
	}
	d.LineTo(vec.Vec2{X: x + w - rx, Y: y})
	corner(vec.Vec2{X: x + w - rx, Y: y}, vec.Vec2{X: x + w, Y: y + ry})
	d.LineTo(vec.Vec2{X: x + w, Y: y + h - ry})
	corner(vec.Vec2{X: x + w, Y: y + h - ry}, vec.Vec2{X: x + w - rx, Y: y + h})
	d.LineTo(vec.Vec2{X: x + rx, Y: y + h})
	corner(vec.Vec2{X: x + rx, Y: y + h}, vec.Vec2{X: x, Y: y + h - ry})
	d.LineTo(vec.Vec2{X: x, Y: y + ry})
	corner(vec.Vec2{X: x, Y: y + ry}, vec.Vec2{X: x + rx, Y: y})
	return d.Close(), nil
}

func circleF(attrs []xml.Attr) (*path.Data, error) {
	r := &attrReader{attrs: attrs}
	c := vec.Vec2{X: r.length("cx"), Y: r.length("cy")}
	rad := r.length("r")
	if r.err != nil || rad <= 0 {
		return nil, r.err
	}
	return plotter.Circle(c, rad).Data(), nil
}

func ellipseF(attrs []xml.Attr) (*path.Data, error) {
	r := &attrReader{attrs: attrs}
	c := vec.Vec2{X: r.length("cx"), Y: r.length("cy")}
	rx, ry := r.length("rx"), r.length("ry")
	if r.err != nil || rx <= 0 || ry <= 0 {
		return nil, r.err
	}
	return plotter.Ellipse(c, rx, ry).Data(), nil
}

func lineF(attrs []xml.Attr) (*path.Data, error) {
	r := &attrReader{attrs: attrs}
	a := vec.Vec2{X: r.length("x1"), Y: r.length("y1")}
	b := vec.Vec2{X: r.length("x2"), Y: r.length("y2")}
	if r.err != nil {
		return nil, r.err
	}
	return plotter.Line(a, b).Data(), nil
}

func polylineF(attrs []xml.Attr) (*path.Data, error) {
	return points(attrs, false)
}

func polygonF(attrs []xml.Attr) (*path.Data, error) {
	return points(attrs, true)
}

// points reads the points attribute.  A trailing odd coordinate is
// ignored.
func points(attrs []xml.Attr, closed bool) (*path.Data, error) {
	v, _ := attrValue(attrs, "", "points")
	xs, err := numbers(v)
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	if len(xs) < 4 {
		return nil, nil
	}
	d := &path.Data{}
	d.MoveTo(vec.Vec2{X: xs[0], Y: xs[1]})
	for i := 2; i+1 < len(xs); i += 2 {
		d.LineTo(vec.Vec2{X: xs[i], Y: xs[i+1]})
	}
	if closed {
		d.Close()
	}
	return d, nil
}

func pathF(attrs []xml.Attr) (*path.Data, error) {
	v, ok := attrValue(attrs, "", "d")
	if !ok {
		return nil, nil
	}
	d, err := parsePathData(v)
	if err != nil {
		return nil, fmt.Errorf("d: %w", err)
	}
	return d, nil
}

// containerF is used for elements which only group their children.
func containerF([]xml.Attr) (*path.Data, error) {
	return nil, nil
}
