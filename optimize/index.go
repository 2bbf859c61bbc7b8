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

// Package optimize reorders paths to reduce the distance a pen plotter
// travels with the pen lifted.
//
// The ordering is the greedy nearest-neighbour heuristic: starting from a
// given pen position, the path whose start (or, if flipping is allowed,
// whose end) is closest to the pen is drawn next.  Nearest-neighbour
// queries are answered by an [Index].  Removing a candidate from an index
// only marks it dead; a [Strategy] decides how often the index is rebuilt
// to get rid of dead entries.
package optimize

import (
	"seehuhn.de/go/geom/vec"
)

// Candidate is a point at which drawing of a path can begin.
//
// Order uses ID 2*i for the start of path i and 2*i+1 for its end.
type Candidate struct {
	ID  int
	Pos vec.Vec2
}

// Index is a spatial index answering nearest-neighbour queries over a set
// of candidates.
type Index interface {
	// Insert adds a candidate to the index.
	Insert(c Candidate)

	// Remove marks the candidate with the given ID as dead.  Removing an
	// unknown or already removed ID has no effect.
	Remove(id int)

	// Nearest returns the live candidate closest to p.  If several
	// candidates have the same distance, the one with the lowest ID is
	// returned.  The second return value is false if no live candidates
	// are left.
	Nearest(p vec.Vec2) (Candidate, bool)

	// Rebuild discards dead entries and restores the index to optimal
	// shape.
	Rebuild()

	// Len returns the number of live candidates.
	Len() int
}

// closer reports whether a candidate with squared distance d and the given
// id is a better match than the current best.
func closer(d float64, id int, bestD float64, bestID int) bool {
	return d < bestD || d == bestD && id < bestID
}

func dist2(a, b vec.Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Strategy decides when the spatial index is rebuilt during [Order].
// The zero value is the same as [Default].
type Strategy struct {
	kind      strategyKind
	ratio     float64
	threshold int
}

type strategyKind int

const (
	kindDefault strategyKind = iota
	kindFull
	kindRatio
	kindThreshold
	kindNever
)

// Default rebuilds the index once 40% of the candidates indexed at the
// last rebuild have been removed, but never before 200 removals.
var Default = Strategy{}

const (
	defaultRatio      = 0.4
	defaultMinRemoved = 200
)

// Full rebuilds the index after every removal.
func Full() Strategy {
	return Strategy{kind: kindFull}
}

// Ratio rebuilds the index once the fraction r of the candidates indexed
// at the last rebuild have been removed.
func Ratio(r float64) Strategy {
	return Strategy{kind: kindRatio, ratio: r}
}

// Threshold rebuilds the index after every n removals.
func Threshold(n int) Strategy {
	return Strategy{kind: kindThreshold, threshold: n}
}

// Never keeps the dead entries in the index until the end.
func Never() Strategy {
	return Strategy{kind: kindNever}
}

// due reports whether the index should be rebuilt, given the number of
// removals since the last rebuild and the number of candidates indexed at
// that time.
func (s Strategy) due(removed, indexed int) bool {
	if removed == 0 {
		return false
	}
	switch s.kind {
	case kindFull:
		return true
	case kindRatio:
		return float64(removed) >= s.ratio*float64(indexed)
	case kindThreshold:
		return removed >= s.threshold
	case kindNever:
		return false
	default:
		return removed >= defaultMinRemoved &&
			float64(removed) >= defaultRatio*float64(indexed)
	}
}

func (s Strategy) String() string {
	switch s.kind {
	case kindFull:
		return "full"
	case kindRatio:
		return "ratio"
	case kindThreshold:
		return "threshold"
	case kindNever:
		return "never"
	default:
		return "default"
	}
}
