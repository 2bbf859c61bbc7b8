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
	"testing"
)

func TestChains(t *testing.T) {
	tests := []struct {
		name string
		ends []Endpoints
		tol  float64
		flip bool
		want [][]Step
	}{
		{
			name: "basic",
			ends: []Endpoints{ep(0, 0, 10, 0), ep(10, 0, 20, 0)},
			tol:  0.1,
			want: [][]Step{{{Index: 0}, {Index: 1}}},
		},
		{
			name: "three",
			ends: []Endpoints{ep(0, 0, 10, 0), ep(10, 0, 10, 10), ep(10, 10, 0, 10)},
			tol:  0.1,
			want: [][]Step{{{Index: 0}, {Index: 1}, {Index: 2}}},
		},
		{
			name: "backward",
			ends: []Endpoints{ep(10, 10, 0, 10), ep(10, 0, 10, 10), ep(0, 0, 10, 0)},
			tol:  0.1,
			want: [][]Step{{{Index: 2}, {Index: 1}, {Index: 0}}},
		},
		{
			name: "needs flip",
			ends: []Endpoints{ep(0, 0, 10, 0), ep(20, 0, 10, 0)},
			tol:  0.1,
			want: [][]Step{{{Index: 0}}, {{Index: 1}}},
		},
		{
			name: "flip",
			ends: []Endpoints{ep(0, 0, 10, 0), ep(20, 0, 10, 0)},
			tol:  0.1,
			flip: true,
			want: [][]Step{{{Index: 0}, {Index: 1, Flip: true}}},
		},
		{
			name: "too far",
			ends: []Endpoints{ep(0, 0, 10, 0), ep(15, 0, 25, 0)},
			tol:  1,
			want: [][]Step{{{Index: 0}}, {{Index: 1}}},
		},
		{
			name: "at tolerance",
			ends: []Endpoints{ep(0, 0, 10, 0), ep(11, 0, 20, 0)},
			tol:  1,
			want: [][]Step{{{Index: 0}, {Index: 1}}},
		},
		{
			name: "empty path",
			ends: []Endpoints{ep(0, 0, 10, 0), {}, ep(10, 0, 20, 0)},
			tol:  0.1,
			want: [][]Step{{{Index: 0}, {Index: 2}}, {{Index: 1}}},
		},
		{
			name: "empty",
			tol:  1,
			flip: true,
		},
		{
			name: "single",
			ends: []Endpoints{ep(0, 0, 10, 0)},
			tol:  1,
			flip: true,
			want: [][]Step{{{Index: 0}}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Chains(tc.ends, tc.tol, tc.flip)
			if !slices.EqualFunc(got, tc.want, slices.Equal[[]Step]) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
