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
	"math/rand/v2"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func ep(x0, y0, x1, y1 float64) Endpoints {
	return Endpoints{Start: vec.Vec2{X: x0, Y: y0}, End: vec.Vec2{X: x1, Y: y1}, Ok: true}
}

func TestOrder(t *testing.T) {
	ends := []Endpoints{
		ep(10, 10.1, 0, 0),
		ep(3, 2.3, 10, 10),
		ep(1, 0, 0, 0),
		ep(2, 1, 1, 0.1),
	}
	got := Order(ends, nil)
	want := []Step{{Index: 2}, {Index: 3}, {Index: 1}, {Index: 0}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrderFlip(t *testing.T) {
	ends := []Endpoints{
		ep(10, 10.1, 20, 20),
		ep(3, 2.3, 10, 10),
		ep(1, 0, 0, 0),
		ep(3, 2, 1, 0.1),
	}
	got := Order(ends, &Options{Flip: true})
	want := []Step{
		{Index: 2, Flip: true},
		{Index: 3, Flip: true},
		{Index: 1},
		{Index: 0},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrderStart(t *testing.T) {
	ends := []Endpoints{
		ep(0, 0, 1, 0),
		ep(100, 0, 101, 0),
	}
	got := Order(ends, &Options{Start: vec.Vec2{X: 110, Y: 0}})
	// starting near the second path would add pen-up travel
	// compared to the input order
	want := []Step{{Index: 0}, {Index: 1}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrderNeverWorse(t *testing.T) {
	ends := []Endpoints{
		ep(10, 0, 1, 0),
		ep(1, 0, 50, 0),
	}
	got := Order(ends, nil)
	want := []Step{{Index: 0}, {Index: 1}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrderMissingEndpoints(t *testing.T) {
	ends := []Endpoints{
		{},
		ep(5, 5, 6, 6),
		{},
		ep(0, 0, 1, 1),
	}
	got := Order(ends, &Options{Flip: true})
	want := []Step{{Index: 3}, {Index: 1}, {Index: 0}, {Index: 2}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrderTrivial(t *testing.T) {
	if got := Order(nil, nil); len(got) != 0 {
		t.Errorf("empty input gave %v", got)
	}
	got := Order([]Endpoints{ep(3, 4, 5, 6)}, &Options{Flip: true})
	if !slices.Equal(got, []Step{{Index: 0}}) {
		t.Errorf("single path gave %v", got)
	}
}

func randomEndpoints(rng *rand.Rand, n int) []Endpoints {
	ends := make([]Endpoints, n)
	for i := range ends {
		x, y := rng.Float64()*1000, rng.Float64()*1000
		ends[i] = ep(x, y, x+rng.Float64()*20-10, y+rng.Float64()*20-10)
	}
	return ends
}

func TestOrderProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	ends := randomEndpoints(rng, 2000)
	identity := make([]Step, len(ends))
	for i := range identity {
		identity[i].Index = i
	}
	before := PenUp(ends, identity)

	for _, flip := range []bool{false, true} {
		steps := Order(ends, &Options{Flip: flip})

		seen := make([]bool, len(ends))
		for _, s := range steps {
			if seen[s.Index] {
				t.Fatalf("path %d occurs twice", s.Index)
			}
			seen[s.Index] = true
			if s.Flip && !flip {
				t.Fatalf("path %d flipped although flipping is disabled", s.Index)
			}
		}
		if len(steps) != len(ends) {
			t.Fatalf("got %d steps, want %d", len(steps), len(ends))
		}

		after := PenUp(ends, steps)
		if after > before {
			t.Errorf("flip=%t: pen-up distance increased from %g to %g", flip, before, after)
		}
	}
}

func TestOrderLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("large input")
	}
	rng := rand.New(rand.NewPCG(11, 12))
	ends := randomEndpoints(rng, 200000)
	identity := make([]Step, len(ends))
	for i := range identity {
		identity[i].Index = i
	}

	steps := Order(ends, &Options{Flip: true})
	if len(steps) != len(ends) {
		t.Fatalf("got %d steps, want %d", len(steps), len(ends))
	}
	seen := make([]bool, len(ends))
	for _, s := range steps {
		if seen[s.Index] {
			t.Fatalf("path %d occurs twice", s.Index)
		}
		seen[s.Index] = true
	}
	if before, after := PenUp(ends, identity), PenUp(ends, steps); after >= before {
		t.Errorf("pen-up distance %g, not below %g", after, before)
	}
}

func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	ends := randomEndpoints(rng, 700)

	ref := Order(ends, &Options{Flip: true, Strategy: Full()})
	variants := map[string]*Options{
		"ratio":     {Flip: true, Strategy: Ratio(0.1)},
		"threshold": {Flip: true, Strategy: Threshold(50)},
		"never":     {Flip: true, Strategy: Never()},
		"default":   {Flip: true},
		"grid": {Flip: true, NewIndex: func(c []Candidate) Index {
			return NewGrid(c)
		}},
	}
	for name, opt := range variants {
		t.Run(name, func(t *testing.T) {
			got := Order(ends, opt)
			if !slices.Equal(got, ref) {
				t.Error("order differs from the one found with full rebuilds")
			}
		})
	}
}

func TestOrderDeterministic(t *testing.T) {
	// a regular grid has many equidistant candidates
	var ends []Endpoints
	for i := range 10 {
		for j := range 10 {
			x, y := float64(i), float64(j)
			ends = append(ends, ep(x, y, x, y))
		}
	}
	a := Order(ends, &Options{Flip: true})
	b := Order(ends, &Options{Flip: true, NewIndex: func(c []Candidate) Index {
		return NewGrid(c)
	}})
	if !slices.Equal(a, b) {
		t.Error("k-d tree and grid disagree on ties")
	}
}

func TestPenUp(t *testing.T) {
	ends := []Endpoints{
		ep(0, 0, 1, 0),
		{},
		ep(4, 4, 1, 4),
	}
	order := []Step{{Index: 0}, {Index: 1}, {Index: 2, Flip: true}}
	if got := PenUp(ends, order); got != 4 {
		t.Errorf("PenUp = %g, want 4", got)
	}
}
