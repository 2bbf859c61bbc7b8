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

package optimize

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plotter/internal/logging"
)

// Endpoints describes where drawing of a path begins and ends.
// Ok is false for empty paths, which have neither.
type Endpoints struct {
	Start, End vec.Vec2
	Ok         bool
}

// Step is one entry in a drawing order: the path with the given index
// into the input, drawn in reverse direction if Flip is set.
type Step struct {
	Index int
	Flip  bool
}

// Options control the path ordering.  The zero value orders without
// flipping, starting from the origin, using a [KDTree] and the [Default]
// rebuild strategy.
type Options struct {
	// Flip allows paths to be drawn in reverse direction.
	Flip bool

	// Strategy decides when the spatial index is rebuilt.
	Strategy Strategy

	// Start is the initial pen position.
	Start vec.Vec2

	// NewIndex constructs the spatial index.  If this is nil, NewKDTree is
	// used.
	NewIndex func([]Candidate) Index
}

// Order computes a drawing order for paths with the given endpoints,
// using the greedy nearest-neighbour heuristic.
//
// The result is a permutation of the input indices.  Paths without
// endpoints are placed at the end, in input order.  If the greedy order
// would increase the pen-up distance compared to the input order, the
// input order is returned unchanged.
func Order(ends []Endpoints, opt *Options) []Step {
	if opt == nil {
		opt = &Options{}
	}

	identity := make([]Step, len(ends))
	for i := range identity {
		identity[i] = Step{Index: i}
	}
	if len(ends) < 2 {
		return identity
	}

	var cands []Candidate
	var rest []int
	for i, e := range ends {
		if !e.Ok {
			rest = append(rest, i)
			continue
		}
		cands = append(cands, Candidate{ID: 2 * i, Pos: e.Start})
		if opt.Flip {
			cands = append(cands, Candidate{ID: 2*i + 1, Pos: e.End})
		}
	}

	newIndex := opt.NewIndex
	if newIndex == nil {
		newIndex = func(c []Candidate) Index { return NewKDTree(c) }
	}
	idx := newIndex(cands)

	steps := make([]Step, 0, len(ends))
	pen := opt.Start
	indexed := len(cands)
	removed := 0
	rebuilds := 0
	for {
		c, ok := idx.Nearest(pen)
		if !ok {
			break
		}
		i := c.ID / 2
		flip := c.ID%2 == 1

		idx.Remove(2 * i)
		removed++
		if opt.Flip {
			idx.Remove(2*i + 1)
			removed++
		}

		steps = append(steps, Step{Index: i, Flip: flip})
		if flip {
			pen = ends[i].Start
		} else {
			pen = ends[i].End
		}

		if opt.Strategy.due(removed, indexed) && idx.Len() > 0 {
			idx.Rebuild()
			indexed = idx.Len()
			removed = 0
			rebuilds++
		}
	}
	for _, i := range rest {
		steps = append(steps, Step{Index: i})
	}

	before := PenUp(ends, identity)
	after := PenUp(ends, steps)
	logger := logging.Get()
	logger.Debug("path order",
		"paths", len(ends),
		"flip", opt.Flip,
		"strategy", opt.Strategy.String(),
		"rebuilds", rebuilds,
		"pen_up_before", before,
		"pen_up_after", after)
	if after > before {
		return identity
	}
	return steps
}

// PenUp returns the distance travelled with the pen lifted when drawing
// the paths in the given order.  This is the sum of the distances from
// the end of each path to the start of the next one.  Paths without
// endpoints are skipped.
func PenUp(ends []Endpoints, order []Step) float64 {
	total := 0.0
	var last vec.Vec2
	haveLast := false
	for _, s := range order {
		e := ends[s.Index]
		if !e.Ok {
			continue
		}
		start, end := e.Start, e.End
		if s.Flip {
			start, end = end, start
		}
		if haveLast {
			total += math.Hypot(start.X-last.X, start.Y-last.Y)
		}
		last = end
		haveLast = true
	}
	return total
}
