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
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/plotter"
)

// style holds the inherited presentation properties which matter for a
// pen plotter.
type style struct {
	stroke        color.NRGBA
	hasStroke     bool
	strokeOpacity float64
	opacity       float64 // product of the opacities of all ancestors

	// width is in the user units of the element where it is used.  Zero
	// means unset.
	width float64
}

var defaultStyle = style{strokeOpacity: 1, opacity: 1}

// styleProps lists the properties in the order they are applied.
var styleProps = []string{"stroke", "stroke-opacity", "opacity", "stroke-width"}

// apply returns the style of an element with the given attributes, when
// the parent has style s.  Declarations in the style attribute take
// precedence over presentation attributes.
func (s style) apply(attrs []xml.Attr) (style, error) {
	props := make(map[string]string)
	for _, a := range attrs {
		if a.Name.Space == "" {
			props[a.Name.Local] = a.Value
		}
	}
	if decls, ok := props["style"]; ok {
		for decl := range strings.SplitSeq(decls, ";") {
			k, v, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			props[strings.TrimSpace(k)] = v
		}
	}

	for _, k := range styleProps {
		v, ok := props[k]
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if v == "inherit" || v == "" {
			continue
		}
		if err := s.set(k, v); err != nil {
			return s, fmt.Errorf("%s=%q: %w", k, v, err)
		}
	}
	return s, nil
}

func (s *style) set(k, v string) error {
	switch k {
	case "stroke":
		c, ok, err := parseColor(v)
		if err != nil {
			return err
		}
		s.stroke, s.hasStroke = c, ok
	case "stroke-opacity":
		x, err := parseOpacity(v)
		if err != nil {
			return err
		}
		s.strokeOpacity = x
	case "opacity":
		x, err := parseOpacity(v)
		if err != nil {
			return err
		}
		s.opacity *= x
	case "stroke-width":
		x, err := plotter.ParseLength(v)
		if err != nil {
			return err
		}
		if x < 0 {
			return errors.New("negative stroke width")
		}
		s.width = x
	}
	return nil
}

// metadata returns the path attributes for an element drawn with
// transformation m.  The stroke width is scaled by the average scale
// factor of m.
func (s style) metadata(m matrix.Matrix) plotter.PathMetadata {
	var res plotter.PathMetadata
	if s.hasStroke {
		c := s.stroke
		a := float64(c.A) * s.strokeOpacity * s.opacity
		c.A = uint8(math.Round(a))
		res.Color = c
	}
	if s.width > 0 {
		res.StrokeWidth = s.width * math.Sqrt(math.Abs(plotter.Det(m)))
	}
	return res
}

func parseOpacity(v string) (float64, error) {
	v, pct := strings.CutSuffix(v, "%")
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, ErrBadNumber
	}
	if pct {
		x /= 100
	}
	return min(max(x, 0), 1), nil
}

// parseColor parses a paint specification.  The second return value is
// false for "none" and for paints which cannot be represented by a solid
// color.
func parseColor(v string) (color.NRGBA, bool, error) {
	v = strings.TrimSpace(v)
	lower := strings.ToLower(v)
	switch {
	case lower == "none" || lower == "currentcolor" || lower == "transparent":
		return color.NRGBA{}, false, nil
	case strings.HasPrefix(lower, "url("):
		// use the fallback color, if any
		_, fallback, _ := strings.Cut(v, ")")
		if strings.TrimSpace(fallback) == "" {
			return color.NRGBA{}, false, nil
		}
		return parseColor(fallback)
	case strings.HasPrefix(v, "#"):
		return parseHex(v[1:])
	case strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba("):
		return parseRGB(v)
	}
	if c, ok := colornames.Map[lower]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true, nil
	}
	return color.NRGBA{}, false, fmt.Errorf("unknown color %q", v)
}

func parseHex(h string) (color.NRGBA, bool, error) {
	x, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, false, fmt.Errorf("#%s: %w", h, ErrBadNumber)
	}
	switch len(h) {
	case 3:
		r, g, b := uint8(x>>8&15), uint8(x>>4&15), uint8(x&15)
		return color.NRGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}, true, nil
	case 6:
		return color.NRGBA{R: uint8(x >> 16), G: uint8(x >> 8), B: uint8(x), A: 255}, true, nil
	}
	return color.NRGBA{}, false, fmt.Errorf("#%s: invalid hex color", h)
}

func parseRGB(v string) (color.NRGBA, bool, error) {
	_, args, _ := strings.Cut(v, "(")
	args, ok := strings.CutSuffix(strings.TrimSpace(args), ")")
	if !ok {
		return color.NRGBA{}, false, fmt.Errorf("%q: missing ')'", v)
	}
	parts := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, false, fmt.Errorf("%q: %w", v, errArgCount)
	}
	var ch [3]uint8
	for i := range ch {
		p, pct := strings.CutSuffix(parts[i], "%")
		x, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return color.NRGBA{}, false, fmt.Errorf("%q: %w", v, ErrBadNumber)
		}
		if pct {
			x = x * 255 / 100
		}
		ch[i] = uint8(math.Round(min(max(x, 0), 255)))
	}
	res := color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}
	if len(parts) == 4 {
		a, err := parseOpacity(parts[3])
		if err != nil {
			return color.NRGBA{}, false, fmt.Errorf("%q: %w", v, err)
		}
		res.A = uint8(math.Round(a * 255))
	}
	return res, true, nil
}
