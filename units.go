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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	pxPerIn = 96.0
	pxPerMM = pxPerIn / 25.4
)

// units maps length units to CSS pixels.
var units = map[string]float64{
	"":   1,
	"px": 1,
	"in": pxPerIn,
	"mm": pxPerMM,
	"cm": 10 * pxPerMM,
	"pt": pxPerIn / 72,
	"pc": pxPerIn / 6,
}

var errNoNumber = errors.New("missing number")

// ParseLength converts a length like "10mm" or "2.5in" to CSS pixels.
// Supported units are px, in, mm, cm, pt and pc.  A number without unit
// is taken to be in pixels.
func ParseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 && isUnitLetter(s[i-1]) {
		i--
	}
	num, unit := s[:i], strings.ToLower(s[i:])
	if num == "" {
		return 0, fmt.Errorf("length %q: %w", s, errNoNumber)
	}

	scale, ok := units[unit]
	if !ok {
		return 0, fmt.Errorf("length %q: unknown unit %q", s, unit)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("length %q: %w", s, err)
	}
	return x * scale, nil
}

func isUnitLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
