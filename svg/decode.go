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

// Package svg reads and writes documents in SVG format.
//
// The decoder understands the subset of SVG which describes line art:
// paths, basic shapes, groups and transformations, together with the
// stroke color and width.  Fills, text and images are not supported.
// The encoder writes one Inkscape layer per document layer.
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/plotter"
	"seehuhn.de/go/plotter/internal/logging"
)

// XML namespaces used in SVG files.
const (
	svgNS      = "http://www.w3.org/2000/svg"
	inkscapeNS = "http://www.inkscape.org/namespaces/inkscape"
)

// ErrorMode determines how the decoder reacts to elements it cannot
// handle.
type ErrorMode int

const (
	// Strict makes unsupported elements an error.
	Strict ErrorMode = iota

	// Warn logs unsupported elements and skips them.
	Warn

	// Ignore silently skips unsupported elements.
	Ignore
)

// Options control the decoder.  A nil *Options is the same as the zero
// value.
type Options struct {
	// SingleLayer puts all paths into layer 1.  Otherwise, every
	// top-level group becomes its own layer, and paths outside of
	// top-level groups go into layer 0.
	SingleLayer bool

	// KeepOutside disables cropping the document to the page.
	KeepOutside bool

	ErrorMode ErrorMode
}

// elements maps the supported element names to their handlers.
var elements = map[string]shapeFunc{
	"svg":      containerF,
	"g":        containerF,
	"a":        containerF,
	"path":     pathF,
	"line":     lineF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  ellipseF,
	"polyline": polylineF,
	"polygon":  polygonF,
}

// skipped lists elements which are ignored together with their
// contents.  None of these are rendered directly.
var skipped = map[string]bool{
	"metadata":       true,
	"title":          true,
	"desc":           true,
	"defs":           true,
	"style":          true,
	"symbol":         true,
	"clipPath":       true,
	"mask":           true,
	"marker":         true,
	"pattern":        true,
	"linearGradient": true,
	"radialGradient": true,
}

// frame is the state of an open element.
type frame struct {
	ctm   matrix.Matrix
	style style
	layer plotter.LayerID
}

type decoder struct {
	opt Options
	xd  *xml.Decoder
	doc *plotter.Document

	stack    []frame
	skip     int // depth inside a skipped subtree
	seenRoot bool
	topIndex int
}

// Decode reads an SVG document from r.
func Decode(r io.Reader, opt *Options) (*plotter.Document, error) {
	d := &decoder{
		xd:  xml.NewDecoder(r),
		doc: &plotter.Document{},
	}
	if opt != nil {
		d.opt = *opt
	}
	d.xd.CharsetReader = charset.NewReaderLabel

	if err := d.run(); err != nil {
		return nil, err
	}

	if size := d.doc.Meta.PageSize; !d.opt.KeepOutside && !size.IsZero() {
		d.doc.Crop(rect.Rect{URx: size.W, URy: size.H})
	}
	return d.doc, nil
}

// Parse decodes an SVG document held in memory.
func Parse(data []byte, opt *Options) (*plotter.Document, error) {
	return Decode(bytes.NewReader(data), opt)
}

// ReadFile decodes the SVG file with the given name.  The file name is
// recorded as the source of the document.
func ReadFile(fname string, opt *Options) (*plotter.Document, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	doc, err := Decode(fd, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	doc.Meta.Source = fname
	return doc, nil
}

func (d *decoder) run() error {
	for {
		tok, err := d.xd.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return d.error(ErrSyntax, "", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if d.skip > 0 {
				d.skip++
				continue
			}
			if err := d.start(t); err != nil {
				return err
			}
		case xml.EndElement:
			if d.skip > 0 {
				d.skip--
				continue
			}
			d.stack = d.stack[:len(d.stack)-1]
		}
	}
	if !d.seenRoot {
		return d.error(ErrSyntax, "", errors.New("no <svg> element found"))
	}
	return nil
}

func (d *decoder) error(kind Kind, elem string, err error) *ParseError {
	line, col := d.xd.InputPos()
	return &ParseError{Kind: kind, Element: elem, Line: line, Column: col, Err: err}
}

func isSVG(name xml.Name) bool {
	return name.Space == "" || name.Space == svgNS
}

func (d *decoder) start(se xml.StartElement) error {
	name := se.Name.Local
	if len(d.stack) == 0 {
		if d.seenRoot || name != "svg" || !isSVG(se.Name) {
			return d.error(ErrSyntax, name, errors.New("root element must be <svg>"))
		}
		d.seenRoot = true
		return d.root(se)
	}

	if !isSVG(se.Name) || skipped[name] {
		d.skip = 1
		return nil
	}
	shape, ok := elements[name]
	if !ok {
		switch d.opt.ErrorMode {
		case Strict:
			return d.error(ErrUnsupported, name, ErrUnsupportedElement)
		case Warn:
			line, _ := d.xd.InputPos()
			logging.Get().Warn("svg: skipping unsupported element",
				"element", name, "line", line)
		}
		d.skip = 1
		return nil
	}

	parent := d.stack[len(d.stack)-1]
	f := parent
	if v, ok := attrValue(se.Attr, "", "transform"); ok {
		m, err := parseTransform(v)
		if err != nil {
			return d.error(ErrTransform, name, err)
		}
		f.ctm = plotter.Concat(m, f.ctm)
	}
	if name == "svg" {
		// nested viewports are placed at (x, y) without clipping
		r := &attrReader{attrs: se.Attr}
		x, y := r.length("x"), r.length("y")
		if r.err != nil {
			return d.error(ErrAttribute, name, r.err)
		}
		f.ctm = plotter.Concat(plotter.Translate(x, y), f.ctm)
	}
	var err error
	f.style, err = parent.style.apply(se.Attr)
	if err != nil {
		return d.error(ErrAttribute, name, err)
	}
	if len(d.stack) == 1 {
		f.layer = d.topLevelLayer(se, f)
	}
	d.stack = append(d.stack, f)

	data, err := shape(se.Attr)
	if err != nil {
		kind := ErrAttribute
		if name == "path" {
			kind = ErrSyntax
		}
		return d.error(kind, name, err)
	}
	if !drawable(data) {
		return nil
	}

	b := plotter.NewBezier(data)
	b.Transform(f.ctm)
	l := d.doc.GetMut(f.layer)
	l.PushPath(&plotter.Path{
		Data: b,
		Meta: f.style.metadata(f.ctm).Override(l.Meta.Defaults),
	})
	return nil
}

// drawable reports whether d contains anything but moveto commands.
func drawable(d *path.Data) bool {
	if d == nil {
		return false
	}
	for _, cmd := range d.Cmds {
		if cmd != path.CmdMoveTo {
			return true
		}
	}
	return false
}

// root handles the outermost <svg> element, which determines the page
// size and the mapping from the viewBox to the page.
func (d *decoder) root(se xml.StartElement) error {
	r := &attrReader{attrs: se.Attr}
	w, hasW := pageLength(r, "width")
	h, hasH := pageLength(r, "height")
	if r.err != nil {
		return d.error(ErrAttribute, "svg", r.err)
	}

	ctm := matrix.Identity
	if v, ok := attrValue(se.Attr, "", "viewBox"); ok {
		vb, err := numbers(v)
		if err == nil && (len(vb) != 4 || vb[2] <= 0 || vb[3] <= 0) {
			err = fmt.Errorf("viewBox %q: need positive width and height", v)
		}
		if err != nil {
			return d.error(ErrAttribute, "svg", err)
		}
		if !hasW {
			w = vb[2]
		}
		if !hasH {
			h = vb[3]
		}
		par, _ := attrValue(se.Attr, "", "preserveAspectRatio")
		ctm = viewBoxTransform(vb, w, h, strings.TrimSpace(par) == "none")
	}
	if w > 0 && h > 0 {
		d.doc.Meta.PageSize = plotter.PageSize{W: w, H: h}
	}

	if v, ok := attrValue(se.Attr, "", "transform"); ok {
		m, err := parseTransform(v)
		if err != nil {
			return d.error(ErrTransform, "svg", err)
		}
		ctm = plotter.Concat(ctm, m)
	}
	st, err := defaultStyle.apply(se.Attr)
	if err != nil {
		return d.error(ErrAttribute, "svg", err)
	}

	f := frame{ctm: ctm, style: st}
	if d.opt.SingleLayer {
		f.layer = 1
	}
	d.stack = append(d.stack, f)
	return nil
}

// pageLength reads the width or height of the page.  Relative sizes are
// treated as missing.
func pageLength(r *attrReader, name string) (float64, bool) {
	v, ok := attrValue(r.attrs, "", name)
	if !ok || strings.HasSuffix(strings.TrimSpace(v), "%") {
		return 0, false
	}
	x, ok := r.lengthOK(name)
	return x, ok && x > 0
}

// viewBoxTransform maps the viewBox vb onto a viewport of size w×h.  The
// viewBox is scaled uniformly and centred, unless stretch is set.
func viewBoxTransform(vb []float64, w, h float64, stretch bool) matrix.Matrix {
	sx, sy := w/vb[2], h/vb[3]
	var dx, dy float64
	if !stretch {
		s := min(sx, sy)
		dx = (w - vb[2]*s) / 2
		dy = (h - vb[3]*s) / 2
		sx, sy = s, s
	}
	return matrix.Matrix{sx, 0, 0, sy, dx - vb[0]*sx, dy - vb[1]*sy}
}

// topLevelLayer determines the layer for the direct child se of the root
// element.  For a group this also sets the layer name and defaults.
func (d *decoder) topLevelLayer(se xml.StartElement, f frame) plotter.LayerID {
	if d.opt.SingleLayer {
		return 1
	}
	if se.Name.Local != "g" {
		return 0
	}
	d.topIndex++

	label, hasLabel := attrValue(se.Attr, inkscapeNS, "label")
	if !hasLabel {
		label, hasLabel = attrValue(se.Attr, "inkscape", "label")
	}
	id, _ := attrValue(se.Attr, "", "id")

	lid, ok := layerNumber(label)
	if !ok {
		lid, ok = layerNumber(id)
	}
	if !ok {
		lid = plotter.LayerID(d.topIndex)
	}

	// An explicit label, even an empty one, takes precedence over the id.
	name := label
	if !hasLabel {
		name = id
	}
	l := d.doc.GetMut(lid)
	if name != "" {
		l.Meta.Name = name
	}
	if len(l.Paths) == 0 {
		l.Meta.Defaults = f.style.metadata(f.ctm)
	}
	return lid
}

// layerNumber extracts the first run of digits from s.  Layer 0 is
// reserved for paths outside of groups, so the number 0 maps to layer 1.
func layerNumber(s string) (plotter.LayerID, bool) {
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && isDigit(rune(s[end])) {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return plotter.LayerID(max(n, 1)), true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
