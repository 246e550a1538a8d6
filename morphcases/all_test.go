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

package morphcases

import (
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/morph/geompath"
)

func TestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				for _, r := range tc.Name {
					if (r < 'a' || r > 'z') && r != '_' {
						t.Fatalf("invalid character %q in name", r)
					}
				}

				from := geompath.FromData(tc.From)
				to := geompath.FromData(tc.To)
				if got := to.IsInterpolatable(from); got != tc.Interpolatable {
					t.Errorf("IsInterpolatable = %t, want %t", got, tc.Interpolatable)
				}

				for _, p := range []*geompath.Path{from, to} {
					b := p.Bounds()
					if b.LLx < 0 || b.LLy < 0 || b.URx > float64(tc.Width) || b.URy > float64(tc.Height) {
						t.Errorf("path %v exceeds the %dx%d canvas", b, tc.Width, tc.Height)
					}
				}
			})
		}
	}
}

func TestCaseNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		for _, tc := range cases {
			name := category + "_" + tc.Name
			if seen[name] {
				t.Errorf("duplicate case %q", name)
			}
			seen[name] = true
		}
	}
}

func TestLookup(t *testing.T) {
	tc, ok := Lookup("shape_diamond_to_circle")
	if !ok {
		t.Fatal("case not found")
	}
	if tc.Name != "diamond_to_circle" {
		t.Errorf("got case %q", tc.Name)
	}
	if _, ok := Lookup("shape_missing"); ok {
		t.Error("found a case which does not exist")
	}
}

func TestRoundBuilders(t *testing.T) {
	c := geompath.FromData(circle(32, 32, 20))
	if !c.Equal(geompath.New().AddCircle(32, 32, 20)) {
		t.Error("circle differs from geompath.AddCircle")
	}
	if e := geompath.FromData(ellipse(32, 32, 20, 20)); !e.Equal(c) {
		t.Errorf("ellipse with equal radii is not a circle: %v", e.Cmds())
	}

	d := geompath.FromData(diamond(0, 0, 3))
	if !d.IsInterpolatable(c) {
		t.Fatal("diamond and circle have different structure")
	}
	// control points divide the first edge into thirds
	want := []vec.Vec2{{X: 3, Y: 0}, {X: 2, Y: -1}, {X: 1, Y: -2}, {X: 0, Y: -3}}
	for i, w := range want {
		got := d.Point(i)
		if math.Abs(got.X-w.X) > 1e-12 || math.Abs(got.Y-w.Y) > 1e-12 {
			t.Errorf("point %d = %v, want %v", i, got, w)
		}
	}
}
