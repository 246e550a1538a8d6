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

// All contains all cases, grouped by category.
// The category name is used as a prefix in case names on the command line.
var All = map[string][]Case{
	"shape":    shapeCases,
	"curve":    curveCases,
	"subpath":  subpathCases,
	"mismatch": mismatchCases,
}

// Lookup returns the case with the given full name, "category_name".
func Lookup(fullName string) (Case, bool) {
	for category, cases := range All {
		for _, c := range cases {
			if category+"_"+c.Name == fullName {
				return c, true
			}
		}
	}
	return Case{}, false
}
