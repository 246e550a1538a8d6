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

var curveCases = []Case{
	{
		Name:           "quadratic_bend",
		From:           quadraticCurve(10, 50, 32, 10, 54, 50),
		To:             quadraticCurve(10, 30, 32, 60, 54, 30),
		Width:          64,
		Height:         64,
		Interpolatable: true,
	},
	{
		Name:           "cubic_swap",
		From:           cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		To:             cubicCurve(10, 50, 44, 10, 20, 10, 54, 50),
		Width:          64,
		Height:         64,
		Interpolatable: true,
	},
	{
		Name:           "s_curve_mirror",
		From:           sCurveQuadratic(10, 32, 54, 32, 20),
		To:             sCurveQuadratic(10, 32, 54, 32, -20),
		Width:          64,
		Height:         64,
		Interpolatable: true,
	},
	{
		Name:           "ellipse_to_circle",
		From:           ellipse(32, 32, 28, 12),
		To:             circle(32, 32, 20),
		Width:          64,
		Height:         64,
		Interpolatable: true,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier
// curves.  The bulge height h gives the vertical offset of the control points.
func sCurveQuadratic(x1, y1, x2, y2, h float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-h), pt(midX, midY)). // first quadratic bulges one way
		QuadTo(pt((midX+x2)/2, y2+h), pt(x2, y2)).     // second quadratic bulges the other way
		Close()
}
