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
	"bufio"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plotter"
)

// EncodeOptions control the encoder.  A nil *EncodeOptions is the same as
// the zero value.
type EncodeOptions struct {
	// Now returns the time stamp used when the document metadata asks
	// for a date.  If Now is nil, time.Now is used.
	Now func() time.Time
}

// Encode writes doc to w in SVG format.
func Encode[C plotter.Curve[C]](w io.Writer, doc *plotter.DocumentOf[C], opt *EncodeOptions) error {
	now := time.Now
	if opt != nil && opt.Now != nil {
		now = opt.Now
	}

	bw := bufio.NewWriter(w)
	e := &encoder{w: bw}

	dims := rect.Rect{URx: 1, URy: 1}
	if size := doc.Meta.PageSize; !size.IsZero() {
		dims = rect.Rect{URx: size.W, URy: size.H}
	} else if r, ok := doc.Bounds(); ok {
		dims = r
	}
	dims.URx = max(dims.URx, dims.LLx+1)
	dims.URy = max(dims.URy, dims.LLy+1)
	width, height := dims.URx-dims.LLx, dims.URy-dims.LLy

	e.printf(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg xmlns="http://www.w3.org/2000/svg"
   xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"
   xmlns:cc="http://creativecommons.org/ns#"
   xmlns:dc="http://purl.org/dc/elements/1.1/"
   xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
   width="%s" height="%s" viewBox="%s %s %s %s">
`, num(width), num(height), num(dims.LLx), num(dims.LLy), num(width), num(height))

	e.printf("<metadata>\n<rdf:RDF>\n<cc:Work>\n<dc:format>image/svg+xml</dc:format>\n")
	if doc.Meta.IncludeDate {
		e.printf("<dc:date>%s</dc:date>\n", now().UTC().Format(time.RFC3339))
	}
	if doc.Meta.Source != "" {
		e.printf("<dc:source>%s</dc:source>\n", escape(doc.Meta.Source))
	}
	e.printf("</cc:Work>\n</rdf:RDF>\n</metadata>\n")

	for id, l := range doc.Layers() {
		defaults := plotter.PathMetadata{}.Resolve(l.Meta.Defaults)
		e.printf(`<g inkscape:groupmode="layer" id="layer%d" inkscape:label="%s"`,
			id, escape(l.Meta.Name))
		e.printf(` fill="none"`)
		e.stroke(defaults)
		e.printf(">\n")

		for _, p := range l.Paths {
			d := pathData(p.Data)
			if d == "" {
				continue
			}
			e.printf(`<path fill="none"`)
			e.stroke(p.Meta.Override(l.Meta.Defaults))
			e.printf(` d="%s"/>`+"\n", d)
		}
		e.printf("</g>\n")
	}
	e.printf("</svg>\n")

	if e.err != nil {
		return e.err
	}
	return bw.Flush()
}

// WriteFile writes doc to the named file in SVG format.
func WriteFile[C plotter.Curve[C]](fname string, doc *plotter.DocumentOf[C], opt *EncodeOptions) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err2 := fd.Close()
		if err == nil {
			err = err2
		}
	}()
	return Encode(fd, doc, opt)
}

// String returns the SVG representation of doc.
func String[C plotter.Curve[C]](doc *plotter.DocumentOf[C], opt *EncodeOptions) string {
	b := &strings.Builder{}
	_ = Encode(b, doc, opt) // writing to a strings.Builder cannot fail
	return b.String()
}

type encoder struct {
	w   *bufio.Writer
	err error
}

func (e *encoder) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// stroke writes the attributes which are set in m.
func (e *encoder) stroke(m plotter.PathMetadata) {
	if m.Color != (color.NRGBA{}) {
		c := m.Color
		e.printf(` stroke="#%02x%02x%02x"`, c.R, c.G, c.B)
		if c.A < 255 {
			e.printf(` stroke-opacity="%s"`, num(float64(c.A)/255))
		}
	}
	if m.StrokeWidth != 0 {
		e.printf(` stroke-width="%s"`, num(m.StrokeWidth))
	}
}

func escape(s string) string {
	b := &strings.Builder{}
	_ = xml.EscapeText(b, []byte(s))
	return b.String()
}

// num formats x with the shortest representation which reads back to
// the same value.
func num(x float64) string {
	if x == 0 {
		x = 0 // avoid "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func pt(p vec.Vec2) string {
	return num(p.X) + "," + num(p.Y)
}

// pathData returns the "d" attribute for a curve.  Curve types other
// than Bezier and Polyline are flattened first.
func pathData[C plotter.Curve[C]](c C) string {
	switch c := any(c).(type) {
	case *plotter.Bezier:
		return bezierData(c.Data())
	case *plotter.Polyline:
		return polylineData(c.Points())
	}
	var parts []string
	for _, pl := range c.Flatten(plotter.DefaultTolerance) {
		if d := polylineData(pl.Points()); d != "" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, " ")
}

func bezierData(d *path.Data) string {
	var parts []string
	i := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			parts = append(parts, "M"+pt(d.Coords[i]))
			i++
		case path.CmdLineTo:
			parts = append(parts, "L"+pt(d.Coords[i]))
			i++
		case path.CmdQuadTo:
			parts = append(parts, "Q"+pt(d.Coords[i])+" "+pt(d.Coords[i+1]))
			i += 2
		case path.CmdCubeTo:
			parts = append(parts, "C"+pt(d.Coords[i])+" "+pt(d.Coords[i+1])+" "+pt(d.Coords[i+2]))
			i += 3
		case path.CmdClose:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

// polylineData writes a polyline whose last point repeats the first as a
// closed path.
func polylineData(pts []vec.Vec2) string {
	if len(pts) == 0 {
		return ""
	}
	parts := []string{"M" + pt(pts[0])}
	closed := len(pts) > 2 && pts[0] == pts[len(pts)-1]
	for i, p := range pts[1:] {
		if closed && i == len(pts)-2 {
			parts = append(parts, "Z")
			break
		}
		parts = append(parts, "L"+pt(p))
	}
	return strings.Join(parts, " ")
}
