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
)

// Kind classifies parse errors.  A Kind can be used as the target of
// [errors.Is] to test the kind of a [*ParseError].
type Kind int

// The kinds of parse errors.
const (
	ErrSyntax      Kind = iota + 1 // malformed XML or path data
	ErrUnsupported                 // an element the decoder cannot handle
	ErrAttribute                   // an invalid attribute value
	ErrTransform                   // an invalid transform attribute
)

func (k Kind) Error() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrUnsupported:
		return "unsupported element"
	case ErrAttribute:
		return "invalid attribute"
	case ErrTransform:
		return "invalid transform"
	default:
		return fmt.Sprintf("svg error kind %d", int(k))
	}
}

var (
	// ErrUnsupportedElement is the cause of errors of kind ErrUnsupported.
	ErrUnsupportedElement = errors.New("element not supported")

	// ErrBadNumber is reported when a numeric value cannot be parsed.
	ErrBadNumber = errors.New("malformed number")
)

// ParseError describes a failure to decode an SVG file.
//
// Line and Column give the approximate position of the problem in the
// input; they are zero if the position is unknown.
type ParseError struct {
	Kind    Kind
	Element string
	Line    int
	Column  int
	Err     error
}

func (e *ParseError) Error() string {
	msg := "svg: "
	if e.Line > 0 {
		msg += fmt.Sprintf("line %d:%d: ", e.Line, e.Column)
	}
	if e.Element != "" {
		msg += "<" + e.Element + ">: "
	}
	msg += e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the Kind of e.
func (e *ParseError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}
