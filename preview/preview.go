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

// Package preview renders documents into raster images, to check plotter
// output without a plotter.
//
// Every path is drawn with a round pen of the path's stroke width, which
// is how the ink of a pen plotter ends up on paper.
package preview

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plotter"
	"seehuhn.de/go/plotter/internal/logging"
)

// flatness is the flattening tolerance in image pixels.
const flatness = 0.25

// Options control the rendering.  A nil *Options is the same as the zero
// value.
type Options struct {
	// Scale is the number of image pixels per CSS pixel.  Zero means 1.
	Scale float64

	// Background is the colour of the page.  Nil means white.
	Background color.Color

	// PenUp, if set, is used to draw the pen-up moves between
	// consecutive paths of each layer as hairlines.
	PenUp color.Color
}

// Render draws doc into a new image.  The image covers the page of the
// document, or the bounding box of the geometry if no page size is set.
func Render[C plotter.Curve[C]](doc *plotter.DocumentOf[C], opt *Options) *image.RGBA {
	if opt == nil {
		opt = &Options{}
	}
	scale := opt.Scale
	if scale <= 0 {
		scale = 1
	}

	box := rect.Rect{URx: 1, URy: 1}
	if size := doc.Meta.PageSize; !size.IsZero() {
		box = rect.Rect{URx: size.W, URy: size.H}
	} else if r, ok := doc.Bounds(); ok {
		box = r
	}
	w := max(int(math.Ceil((box.URx-box.LLx)*scale)), 1)
	h := max(int(math.Ceil((box.URy-box.LLy)*scale)), 1)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var bg color.Color = color.White
	if opt.Background != nil {
		bg = opt.Background
	}
	fillImage(img, bg)

	toDevice := func(pts []vec.Vec2) []vec.Vec2 {
		res := make([]vec.Vec2, len(pts))
		for i, p := range pts {
			res[i] = vec.Vec2{X: (p.X - box.LLx) * scale, Y: (p.Y - box.LLy) * scale}
		}
		return res
	}

	r := newRasterizer(w, h)
	n := 0
	for _, l := range doc.Layers() {
		for _, p := range l.Paths {
			m := p.Meta.Resolve(l.Meta.Defaults)
			pn := newPen(r, m.StrokeWidth*scale/2)
			for _, pl := range p.Data.Flatten(flatness / scale) {
				pn.stroke(toDevice(pl.Points()))
			}
			r.fill(blend(img, m.Color))
			n++
		}
		if opt.PenUp != nil {
			pn := newPen(r, 0.5)
			for _, move := range l.PenUpTrajectories() {
				pn.stroke(toDevice(move[:]))
			}
			r.fill(blend(img, opt.PenUp))
		}
	}
	logging.Get().Debug("preview rendered", "width", w, "height", h, "paths", n)

	return img
}

// Encode renders doc and writes the image to w in PNG format.
func Encode[C plotter.Curve[C]](w io.Writer, doc *plotter.DocumentOf[C], opt *Options) error {
	return png.Encode(w, Render(doc, opt))
}

// WriteFile renders doc and writes the image to a PNG file.
func WriteFile[C plotter.Curve[C]](fname string, doc *plotter.DocumentOf[C], opt *Options) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, doc, opt); err != nil {
		return err
	}
	return bw.Flush()
}

func fillImage(img *image.RGBA, c color.Color) {
	px := color.RGBAModel.Convert(c).(color.RGBA)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = px.R
		img.Pix[i+1] = px.G
		img.Pix[i+2] = px.B
		img.Pix[i+3] = px.A
	}
}

// blend returns an emit function which paints colour c over img, weighted
// by the coverage.
func blend(img *image.RGBA, c color.Color) func(y, xMin int, coverage []float32) {
	sr, sg, sb, sa := c.RGBA() // premultiplied, 16 bit
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+4*xMin:]
		for i, cov := range coverage {
			px := row[4*i : 4*i+4 : 4*i+4]
			k := float64(cov) / 0xffff
			a := float64(sa) * k
			px[0] = mix(px[0], float64(sr)*k, a)
			px[1] = mix(px[1], float64(sg)*k, a)
			px[2] = mix(px[2], float64(sb)*k, a)
			px[3] = mix(px[3], a, a)
		}
	}
}

// mix composites a premultiplied source value s with alpha a, both in
// [0, 1], over the 8 bit destination value d.
func mix(d uint8, s, a float64) uint8 {
	v := s*255 + float64(d)*(1-a)
	return uint8(min(max(math.Round(v), 0), 255))
}
