// seehuhn.de/go/morph - interpolation between vector paths
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

package morph

import (
	"maps"
	"slices"
	"testing"
)

// buffers contains well-formed flat command buffers.
var buffers = map[string][]float64{
	"empty":    nil,
	"move":     {0, 1, 2},
	"triangle": {0, 0, 0, 1, 10, 0, 1, 10, 10, 5},
	"quad":     {0, 0, 0, 2, 5, 5, 10, 0},
	"conic":    {0, 0, 0, 3, 5, 5, 10, 0, 0.7071, 5},
	"cubic":    {0, 0, 0, 4, 1, 2, 3, 4, 5, 6, 5},
	"all": {
		0, 1, 1,
		1, 2, 2,
		2, 3, 3, 4, 4,
		3, 5, 5, 6, 6, 2,
		4, 7, 7, 8, 8, 9, 9,
		5,
	},
	"close_first": {5, 0, 1, 1, 5},
	"two_closes":  {0, 0, 0, 5, 5},
	"subpaths":    {0, 0, 0, 1, 1, 0, 5, 0, 3, 3, 1, 4, 3, 5},
}

func TestSegmentExample(t *testing.T) {
	buf := []float64{float64(Move), 0, 0, float64(Line), 10, 0, float64(Close)}
	got := Segment(buf)
	want := Commands{
		{float64(Move), 0, 0},
		{float64(Line), 10, 0},
		{float64(Close)},
	}
	if !equalCommands(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSegmentRoundTrip(t *testing.T) {
	for _, name := range slices.Sorted(maps.Keys(buffers)) {
		buf := buffers[name]
		t.Run(name, func(t *testing.T) {
			cs := Segment(buf)
			flat := cs.Flatten()
			if !slices.Equal(flat, buf) {
				t.Errorf("round trip: got %v, want %v", flat, buf)
			}
		})
	}
}

func TestSegmentLengths(t *testing.T) {
	for _, name := range slices.Sorted(maps.Keys(buffers)) {
		buf := buffers[name]
		t.Run(name, func(t *testing.T) {
			total := 0
			for i, c := range Segment(buf) {
				if len(c) != c.Verb().Len() {
					t.Errorf("command %d (%s): %d tokens, want %d",
						i, c.Verb(), len(c), c.Verb().Len())
				}
				total += len(c)
			}
			if total != len(buf) {
				t.Errorf("commands hold %d tokens, buffer has %d", total, len(buf))
			}
		})
	}
}

func TestSegmentCount(t *testing.T) {
	cases := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"move", 1},
		{"triangle", 4},
		{"all", 6},
		{"close_first", 3},
		{"two_closes", 3},
		{"subpaths", 6},
	}
	for _, tc := range cases {
		if got := len(Segment(buffers[tc.name])); got != tc.n {
			t.Errorf("%s: got %d commands, want %d", tc.name, got, tc.n)
		}
	}
}

func TestSegmentNoAliasing(t *testing.T) {
	buf := []float64{0, 1, 2, 1, 3, 4}
	cs := Segment(buf)
	buf[1] = 100
	if cs[0][1] != 1 {
		t.Error("commands share memory with the input buffer")
	}
}

func TestSegmentMalformed(t *testing.T) {
	cases := map[string][]float64{
		"unknown_verb": {0, 0, 0, 9, 1, 1},
		"fractional":   {0.5, 1, 1},
		"truncated":    {0, 0, 0, 4, 1, 2, 3},
	}
	for _, name := range slices.Sorted(maps.Keys(cases)) {
		buf := cases[name]
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("malformed buffer did not panic")
				}
			}()
			Segment(buf)
		})
	}
}

func TestVerbLen(t *testing.T) {
	want := map[Verb]int{Move: 3, Line: 3, Quad: 5, Conic: 6, Cubic: 7, Close: 1}
	for v, n := range want {
		if v.Len() != n {
			t.Errorf("%s.Len() = %d, want %d", v, v.Len(), n)
		}
	}
	if Verb(6).Len() != 0 || Verb(-1).Len() != 0 {
		t.Error("unknown verbs must have length 0")
	}
	if s := Verb(17).String(); s != "Verb(17)" {
		t.Errorf("unexpected name %q", s)
	}
}

func TestParseVerb(t *testing.T) {
	cases := []struct {
		tok  float64
		want Verb
		ok   bool
	}{
		{0, Move, true},
		{3, Conic, true},
		{5, Close, true},
		{6, 6, false},
		{-1, -1, false},
		{2.5, -1, false},
		{-0.5, -1, false},
	}
	for _, tc := range cases {
		v, ok := ParseVerb(tc.tok)
		if v != tc.want || ok != tc.ok {
			t.Errorf("ParseVerb(%g) = %s, %t, want %s, %t", tc.tok, v, ok, tc.want, tc.ok)
		}
		if ok && v.Len() == 0 {
			t.Errorf("ParseVerb(%g) accepted a verb without length", tc.tok)
		}
	}
}

func TestCommandsVerbs(t *testing.T) {
	got := Segment(buffers["all"]).Verbs()
	want := []Verb{Move, Line, Quad, Conic, Cubic, Close}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCommandsClone(t *testing.T) {
	cs := Segment(buffers["triangle"])
	cp := cs.Clone()
	cp[1][1] = -1
	if cs[1][1] != 10 {
		t.Error("Clone shares memory with the original")
	}
	if Commands(nil).Clone() != nil {
		t.Error("Clone of nil must be nil")
	}
}

func equalCommands(a, b Commands) bool {
	return slices.EqualFunc(a, b, func(x, y Command) bool {
		return slices.Equal(x, y)
	})
}
