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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Chains groups paths whose endpoints meet within tol, so that each group
// can be drawn as a single path.  Within a group, the end of each path is
// at most tol away from the start of the next one.  If flip is true,
// paths may be reversed to make them fit.
//
// Every input index occurs in exactly one group.  Groups are returned in
// the order of their first-seen member; paths without endpoints form
// groups of their own.
func Chains(ends []Endpoints, tol float64, flip bool) [][]Step {
	// heads holds the points where a path can be attached after the
	// chain, tails the points where one can be attached before it.
	var headCands, tailCands []Candidate
	for i, e := range ends {
		if !e.Ok {
			continue
		}
		headCands = append(headCands, Candidate{ID: 2 * i, Pos: e.Start})
		tailCands = append(tailCands, Candidate{ID: 2*i + 1, Pos: e.End})
		if flip {
			headCands = append(headCands, Candidate{ID: 2*i + 1, Pos: e.End})
			tailCands = append(tailCands, Candidate{ID: 2 * i, Pos: e.Start})
		}
	}
	heads := NewKDTree(headCands)
	tails := NewKDTree(tailCands)

	used := make([]bool, len(ends))
	take := func(i int) {
		used[i] = true
		heads.Remove(2 * i)
		heads.Remove(2*i + 1)
		tails.Remove(2 * i)
		tails.Remove(2*i + 1)
	}
	within := func(c Candidate, p vec.Vec2) bool {
		return dist2(c.Pos, p) <= tol*tol
	}

	var res [][]Step
	for i, e := range ends {
		if used[i] {
			continue
		}
		take(i)
		chain := []Step{{Index: i}}
		if !e.Ok {
			res = append(res, chain)
			continue
		}

		// extend forward from the end of the chain
		end := e.End
		for {
			c, ok := heads.Nearest(end)
			if !ok || !within(c, end) {
				break
			}
			j := c.ID / 2
			s := Step{Index: j, Flip: c.ID%2 == 1}
			take(j)
			chain = append(chain, s)
			if s.Flip {
				end = ends[j].Start
			} else {
				end = ends[j].End
			}
		}

		// extend backward from the start of the chain
		start := e.Start
		var prefix []Step
		for {
			c, ok := tails.Nearest(start)
			if !ok || !within(c, start) {
				break
			}
			j := c.ID / 2
			// a tail candidate with an even ID is the start of path j,
			// which only fits if j is reversed
			s := Step{Index: j, Flip: c.ID%2 == 0}
			take(j)
			prefix = append(prefix, s)
			if s.Flip {
				start = ends[j].End
			} else {
				start = ends[j].Start
			}
		}
		if len(prefix) > 0 {
			slices.Reverse(prefix)
			chain = append(prefix, chain...)
		}

		res = append(res, chain)
	}
	return res
}
