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
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// scanner reads numbers from attribute values such as path data, point
// lists and transform arguments.
type scanner struct {
	s   string
	pos int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.s) && isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

// skipSep skips white space and at most one comma.
func (sc *scanner) skipSep() {
	sc.skipSpace()
	if sc.pos < len(sc.s) && sc.s[sc.pos] == ',' {
		sc.pos++
		sc.skipSpace()
	}
}

func (sc *scanner) done() bool {
	return sc.pos >= len(sc.s)
}

// atNumber reports whether a number starts at the current position.
func (sc *scanner) atNumber() bool {
	if sc.done() {
		return false
	}
	c := sc.s[sc.pos]
	return c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.'
}

// number reads a number and the separator following it.  Numbers may be
// written without separators where this is unambiguous, as in "1-2" or
// "0.5.5".
func (sc *scanner) number() (float64, error) {
	start := sc.pos
	i := sc.pos
	if i < len(sc.s) && (sc.s[i] == '-' || sc.s[i] == '+') {
		i++
	}
	digits := 0
	for i < len(sc.s) && sc.s[i] >= '0' && sc.s[i] <= '9' {
		i++
		digits++
	}
	if i < len(sc.s) && sc.s[i] == '.' {
		i++
		for i < len(sc.s) && sc.s[i] >= '0' && sc.s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("offset %d: %w", start, ErrBadNumber)
	}
	if i < len(sc.s) && (sc.s[i] == 'e' || sc.s[i] == 'E') {
		j := i + 1
		if j < len(sc.s) && (sc.s[j] == '-' || sc.s[j] == '+') {
			j++
		}
		k := j
		for k < len(sc.s) && sc.s[k] >= '0' && sc.s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	x, err := strconv.ParseFloat(sc.s[start:i], 64)
	if err != nil {
		return 0, fmt.Errorf("offset %d: %w", start, ErrBadNumber)
	}
	sc.pos = i
	sc.skipSep()
	return x, nil
}

// flag reads an arc flag.  Flags are single characters and need no
// separator.
func (sc *scanner) flag() (bool, error) {
	if sc.done() || sc.s[sc.pos] != '0' && sc.s[sc.pos] != '1' {
		return false, fmt.Errorf("offset %d: invalid arc flag", sc.pos)
	}
	f := sc.s[sc.pos] == '1'
	sc.pos++
	sc.skipSep()
	return f, nil
}

func (sc *scanner) point() (vec.Vec2, error) {
	x, err := sc.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := sc.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x, Y: y}, nil
}

// numbers reads a list of numbers separated by white space or commas.
func numbers(s string) ([]float64, error) {
	sc := &scanner{s: s}
	sc.skipSpace()
	var res []float64
	for !sc.done() {
		x, err := sc.number()
		if err != nil {
			return nil, err
		}
		res = append(res, x)
	}
	return res, nil
}

// parsePathData converts the value of a "d" attribute into path data.
// Arcs are converted to cubic Bézier curves.
func parsePathData(d string) (*path.Data, error) {
	sc := &scanner{s: d}
	res := &path.Data{}

	var cur, start, ctrl vec.Vec2
	var cmd, prev byte
	needMove := false
	for {
		sc.skipSpace()
		if sc.done() {
			break
		}
		c := sc.s[sc.pos]
		switch {
		case isPathCommand(c):
			cmd = c
			sc.pos++
			sc.skipSpace()
		case cmd == 0 || !sc.atNumber():
			return nil, fmt.Errorf("offset %d: unexpected %q", sc.pos, c)
		}
		if len(res.Cmds) == 0 && cmd != 'M' && cmd != 'm' {
			return nil, fmt.Errorf("path data must start with a moveto")
		}

		var base vec.Vec2
		if cmd >= 'a' {
			base = cur
		}
		upper := cmd &^ 0x20
		if needMove && upper != 'M' && upper != 'Z' {
			res.MoveTo(start)
			needMove = false
		}

		switch upper {
		case 'M':
			p, err := sc.point()
			if err != nil {
				return nil, err
			}
			p = p.Add(base)
			res.MoveTo(p)
			cur, start = p, p
			needMove = false
			// further coordinate pairs are implicit lineto commands
			cmd -= 'M' - 'L'
		case 'L':
			p, err := sc.point()
			if err != nil {
				return nil, err
			}
			cur = p.Add(base)
			res.LineTo(cur)
		case 'H':
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			cur = vec.Vec2{X: x + base.X, Y: cur.Y}
			res.LineTo(cur)
		case 'V':
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			cur = vec.Vec2{X: cur.X, Y: y + base.Y}
			res.LineTo(cur)
		case 'C', 'S':
			var c1 vec.Vec2
			if upper == 'C' {
				p, err := sc.point()
				if err != nil {
					return nil, err
				}
				c1 = p.Add(base)
			} else if prev == 'C' || prev == 'S' {
				c1 = cur.Mul(2).Sub(ctrl)
			} else {
				c1 = cur
			}
			c2, err := sc.point()
			if err != nil {
				return nil, err
			}
			p, err := sc.point()
			if err != nil {
				return nil, err
			}
			c2, p = c2.Add(base), p.Add(base)
			res.CubeTo(c1, c2, p)
			ctrl, cur = c2, p
		case 'Q', 'T':
			var c1 vec.Vec2
			if upper == 'Q' {
				p, err := sc.point()
				if err != nil {
					return nil, err
				}
				c1 = p.Add(base)
			} else if prev == 'Q' || prev == 'T' {
				c1 = cur.Mul(2).Sub(ctrl)
			} else {
				c1 = cur
			}
			p, err := sc.point()
			if err != nil {
				return nil, err
			}
			p = p.Add(base)
			res.QuadTo(c1, p)
			ctrl, cur = c1, p
		case 'A':
			rx, err := sc.number()
			if err != nil {
				return nil, err
			}
			ry, err := sc.number()
			if err != nil {
				return nil, err
			}
			rot, err := sc.number()
			if err != nil {
				return nil, err
			}
			large, err := sc.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := sc.flag()
			if err != nil {
				return nil, err
			}
			p, err := sc.point()
			if err != nil {
				return nil, err
			}
			p = p.Add(base)
			arcTo(res, cur, rx, ry, rot*math.Pi/180, large, sweep, p)
			cur = p
		case 'Z':
			res.Close()
			cur = start
			needMove = true
			// closepath takes no arguments and is never repeated
			cmd = 0
		}
		prev = upper
	}
	return res, nil
}

func isPathCommand(c byte) bool {
	switch c &^ 0x20 {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}

// arcTo appends an elliptical arc from p0 to p1 to d, as a sequence of
// cubic Bézier curves each spanning at most a quarter turn.  The
// parameters follow the SVG arc syntax; phi is in radians.  Radii which
// are too small are scaled up as required by SVG.
func arcTo(d *path.Data, p0 vec.Vec2, rx, ry, phi float64, large, sweep bool, p1 vec.Vec2) {
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		d.LineTo(p1)
		return
	}

	sin, cos := math.Sincos(phi)
	hx, hy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1 := cos*hx + sin*hy
	y1 := -sin*hx + cos*hy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	var coef float64
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	cx := cos*cx1 - sin*cy1 + (p0.X+p1.X)/2
	cy := sin*cx1 + cos*cy1 + (p0.Y+p1.Y)/2

	theta1 := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	theta2 := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	dTheta := theta2 - theta1
	if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	} else if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	}

	n := max(int(math.Ceil(math.Abs(dTheta)/(math.Pi/2)-1e-9)), 1)
	step := dTheta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	// point and tangent of the ellipse at parameter t
	at := func(t float64) (vec.Vec2, vec.Vec2) {
		st, ct := math.Sincos(t)
		ex, ey := rx*ct, ry*st
		tx, ty := -rx*st, ry*ct
		return vec.Vec2{X: cx + cos*ex - sin*ey, Y: cy + sin*ex + cos*ey},
			vec.Vec2{X: cos*tx - sin*ty, Y: sin*tx + cos*ty}
	}

	_, da := at(theta1)
	a := p0
	for i := 1; i <= n; i++ {
		b, db := at(theta1 + step*float64(i))
		if i == n {
			b = p1
		}
		d.CubeTo(a.Add(da.Mul(k)), b.Sub(db.Mul(k)), b)
		a, da = b, db
	}
}
