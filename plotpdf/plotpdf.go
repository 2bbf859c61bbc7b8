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

// Package plotpdf writes documents as PDF files, for print previews of
// plotter output.
package plotpdf

import (
	imgcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/plotter"
	"seehuhn.de/go/plotter/internal/logging"
)

// ptPerPx converts CSS pixels (96 per inch) to PDF points (72 per inch).
const ptPerPx = 0.75

// Options control the PDF output.  A nil *Options is the same as the zero
// value.
type Options struct {
	// Margin is added around the drawing on all sides, in CSS pixels.
	Margin float64
}

// WriteFile writes doc as a single-page PDF file.  The page has the page
// size of the document, or the size of the bounding box of the geometry
// if no page size is set.  All paths are stroked with round caps and
// joins, in shades of gray.
func WriteFile[C plotter.Curve[C]](fname string, doc *plotter.DocumentOf[C], opt *Options) error {
	var margin float64
	if opt != nil {
		margin = opt.Margin
	}

	box := rect.Rect{URx: 1, URy: 1}
	if size := doc.Meta.PageSize; !size.IsZero() {
		box = rect.Rect{URx: size.W, URy: size.H}
	} else if r, ok := doc.Bounds(); ok {
		box = r
	}
	box.LLx -= margin
	box.LLy -= margin
	box.URx = max(box.URx+margin, box.LLx+1)
	box.URy = max(box.URy+margin, box.LLy+1)

	paper := &pdf.Rectangle{
		URx: (box.URx - box.LLx) * ptPerPx,
		URy: (box.URy - box.LLy) * ptPerPx,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// The document y-axis points down, the PDF one up.
	s := ptPerPx
	page.Transform(matrix.Matrix{s, 0, 0, -s, -s * box.LLx, s * box.URy})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	n := 0
	for _, l := range doc.Layers() {
		for _, p := range l.Paths {
			m := p.Meta.Resolve(l.Meta.Defaults)
			page.SetLineWidth(m.StrokeWidth)
			page.SetStrokeColor(color.DeviceGray(gray(m.Color)))
			if drawCurve(page, p.Data) {
				page.Stroke()
				n++
			}
		}
	}
	logging.Get().Debug("pdf written", "file", fname, "paths", n)

	return page.Close()
}

// drawCurve appends the geometry of c to the current path.  The return
// value is false if nothing was added.
func drawCurve[C plotter.Curve[C]](page *document.Page, c C) bool {
	switch c := any(c).(type) {
	case *plotter.Bezier:
		return drawData(page, c.Data())
	case *plotter.Polyline:
		return drawPoints(page, c.Points())
	}
	drawn := false
	for _, pl := range c.Flatten(plotter.DefaultTolerance) {
		drawn = drawPoints(page, pl.Points()) || drawn
	}
	return drawn
}

func drawData(page *document.Page, d *path.Data) bool {
	if len(d.Cmds) == 0 {
		return false
	}
	// PDF has no quadratic Bézier curves
	for cmd, pts := range d.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	return true
}

func drawPoints(page *document.Page, pts []vec.Vec2) bool {
	if len(pts) == 0 {
		return false
	}
	page.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		page.LineTo(p.X, p.Y)
	}
	return true
}

// gray converts c to a gray level, where 0 is black and 1 is white.
// Transparent colors are lighter.
func gray(c imgcolor.NRGBA) float64 {
	y := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	a := float64(c.A) / 255
	return 1 - a*(1-y)
}
