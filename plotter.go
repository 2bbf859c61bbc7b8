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

// Package plotter implements the geometry engine of a pen-plotter toolchain.
//
// A [Document] maps integer layer IDs to layers, each layer holds an
// ordered list of paths, and each path combines a curve with stroke
// metadata.  Curves come in two forms sharing the [Curve] contract:
// [Bezier] for vector geometry and [Polyline] for flattened point chains.
// The subpackages provide rectangle clipping (clip), hatching (hatch),
// pen-travel optimisation (optimize), SVG input and output (svg), PDF
// output (plotpdf) and PNG previews (preview).
package plotter

//go:generate go run ./testcases/export

import (
	"log/slog"

	"seehuhn.de/go/plotter/internal/logging"
)

const (
	// SamePointEpsilon is the distance below which two points are
	// considered identical.
	SamePointEpsilon = 1e-10

	// DefaultTolerance is the flattening tolerance used when callers have
	// no better value, in CSS pixels.
	DefaultTolerance = 0.05
)

// SetLogger configures the logger used by plotter and its subpackages.
// By default nothing is logged.  Pass nil to restore the silent default.
//
// Debug records describe optimiser runs and PDF output, Warn records
// report SVG elements which were skipped.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the logger configured by SetLogger.
func Logger() *slog.Logger {
	return logging.Get()
}
