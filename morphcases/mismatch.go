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

// mismatchCases contain pairs of paths which cannot be interpolated.
var mismatchCases = []Case{
	{
		Name:   "line_vs_quadratic",
		From:   (&path.Data{}).MoveTo(pt(10, 32)).LineTo(pt(54, 32)),
		To:     (&path.Data{}).MoveTo(pt(10, 32)).QuadTo(pt(32, 10), pt(54, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle_vs_rectangle",
		From:   triangle(10, 54, 54, 54, 32, 10),
		To:     rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "open_vs_closed",
		From:   (&path.Data{}).MoveTo(pt(10, 54)).LineTo(pt(54, 54)).LineTo(pt(32, 10)),
		To:     triangle(10, 54, 54, 54, 32, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_vs_star",
		From:   circle(32, 32, 20),
		To:     star(32, 34, 26, 0.4),
		Width:  64,
		Height: 64,
	},
}
