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
	"errors"
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/plotter"
)

var errArgCount = errors.New("wrong number of arguments")

// parseTransform converts the value of a transform attribute into a
// matrix.  The transformations in the list are applied right to left.
func parseTransform(v string) (matrix.Matrix, error) {
	m := matrix.Identity
	parts := strings.Split(v, ")")
	if tail := parts[len(parts)-1]; strings.TrimSpace(tail) != "" {
		return m, fmt.Errorf("%q: missing ')'", tail)
	}
	for _, t := range parts[:len(parts)-1] {
		t = strings.TrimLeft(t, " \t\r\n,")
		if t == "" {
			continue
		}
		name, args, ok := strings.Cut(t, "(")
		if !ok {
			return m, fmt.Errorf("%q: missing argument list", t)
		}
		name = strings.TrimSpace(name)
		xs, err := numbers(args)
		if err != nil {
			return m, fmt.Errorf("%s: %w", name, err)
		}
		tm, err := transformOf(name, xs)
		if err != nil {
			return m, fmt.Errorf("%s: %w", name, err)
		}
		m = plotter.Concat(tm, m)
	}
	return m, nil
}

func transformOf(name string, xs []float64) (matrix.Matrix, error) {
	const deg = math.Pi / 180
	n := len(xs)
	switch name {
	case "matrix":
		if n == 6 {
			return matrix.Matrix{xs[0], xs[1], xs[2], xs[3], xs[4], xs[5]}, nil
		}
	case "translate":
		switch n {
		case 1:
			return plotter.Translate(xs[0], 0), nil
		case 2:
			return plotter.Translate(xs[0], xs[1]), nil
		}
	case "scale":
		switch n {
		case 1:
			return plotter.ScaleUniform(xs[0]), nil
		case 2:
			return plotter.Scale(xs[0], xs[1]), nil
		}
	case "rotate":
		switch n {
		case 1:
			return plotter.Rotate(xs[0] * deg), nil
		case 3:
			return plotter.RotateAround(xs[0]*deg, xs[1], xs[2]), nil
		}
	case "skewX":
		if n == 1 {
			return plotter.Skew(xs[0]*deg, 0), nil
		}
	case "skewY":
		if n == 1 {
			return plotter.Skew(0, xs[0]*deg), nil
		}
	default:
		return matrix.Identity, errors.New("unknown transformation")
	}
	return matrix.Identity, errArgCount
}
