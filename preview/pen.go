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

package preview

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// penTolerance is the largest distance, in pixels, between the drawn pen
// outline and a true circle.
const penTolerance = 0.1

// pen adds the outlines of strokes drawn with a round pen to a
// rasterizer.  Every segment becomes a capsule, so that joins and caps
// are round, like the trace of a real pen.
type pen struct {
	r      *rasterizer
	radius float64
	steps  int // polygon vertices per half circle
	buf    []vec.Vec2
}

func newPen(r *rasterizer, radius float64) *pen {
	steps := 2
	if radius > penTolerance {
		// the chord of an arc of angle a deviates by radius*(1-cos(a/2))
		a := 2 * math.Acos(1-penTolerance/radius)
		steps = int(math.Ceil(math.Pi / a))
	}
	return &pen{r: r, radius: radius, steps: min(max(steps, 2), 64)}
}

// stroke adds the trace of the pen along the polyline pts.  A single
// point leaves a dot.
func (p *pen) stroke(pts []vec.Vec2) {
	switch len(pts) {
	case 0:
		return
	case 1:
		p.capsule(pts[0], pts[0])
		return
	}
	for i := 1; i < len(pts); i++ {
		p.capsule(pts[i-1], pts[i])
	}
}

// capsule adds the area swept by the pen moving in a straight line from
// a to b.  All capsules have the same orientation.
func (p *pen) capsule(a, b vec.Vec2) {
	phi := 0.0
	if d := b.Sub(a); d.Length() > 0 {
		phi = math.Atan2(d.Y, d.X)
	}

	p.buf = p.buf[:0]
	arc := func(c vec.Vec2, from float64) {
		for i := range p.steps + 1 {
			t := from + math.Pi*float64(i)/float64(p.steps)
			p.buf = append(p.buf, vec.Vec2{
				X: c.X + p.radius*math.Cos(t),
				Y: c.Y + p.radius*math.Sin(t),
			})
		}
	}
	arc(b, phi-math.Pi/2)
	arc(a, phi+math.Pi/2)
	p.r.addRing(p.buf)
}
