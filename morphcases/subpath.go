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

import "seehuhn.de/go/geom/path"

var subpathCases = []Case{
	{
		Name:           "ring",
		From:           join(circle(64, 64, 50), circle(64, 64, 25)),
		To:             join(diamond(64, 64, 56), diamond(64, 64, 20)),
		Width:          128,
		Height:         128,
		Interpolatable: true,
	},
	{
		Name: "two_triangles_swap",
		From: join(
			triangle(10, 54, 54, 54, 32, 10),
			triangle(74, 54, 118, 54, 96, 10)),
		To: join(
			triangle(74, 54, 118, 54, 96, 10),
			triangle(10, 54, 54, 54, 32, 10)),
		Width:          128,
		Height:         64,
		Interpolatable: true,
	},
}

// join concatenates the subpaths of all arguments into a new path.
func join(parts ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, p := range parts {
		res.Cmds = append(res.Cmds, p.Cmds...)
		res.Coords = append(res.Coords, p.Coords...)
	}
	return res
}
