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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/morph/geompath"
)

var shapeCases = []Case{
	{
		Name:           "diamond_to_circle",
		From:           diamond(32, 32, 24),
		To:             circle(32, 32, 20),
		Width:          64,
		Height:         64,
		Interpolatable: true,
	},
	{
		Name:           "triangle_flip",
		From:           triangle(10, 54, 54, 54, 32, 10),
		To:             triangle(10, 10, 54, 10, 32, 54),
		Width:          64,
		Height:         64,
		Interpolatable: true,
	},
	{
		Name:           "star_to_pentagon",
		From:           star(32, 34, 26, 0.4),
		To:             star(32, 34, 26, math.Cos(math.Pi/5)),
		Width:          64,
		Height:         64,
		Interpolatable: true,
	},
	{
		Name:           "rectangle_grow",
		From:           rectangle(28, 28, 36, 36),
		To:             rectangle(4, 12, 60, 52),
		Width:          64,
		Height:         64,
		Interpolatable: true,
	},
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return geompath.New().AddCircle(cx, cy, r).Data()
}

// ellipse builds an axis-aligned ellipse with the same structure as circle.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	r := rect.Rect{LLx: cx - rx, LLy: cy - ry, URx: cx + rx, URy: cy + ry}
	return geompath.New().AddOval(r).Data()
}

// diamond builds a square standing on one corner.  The edges are cubic
// Bezier curves with the control points on the edge, so that the path has
// the same structure as the output of circle.
func diamond(cx, cy, r float64) *path.Data {
	corners := []vec.Vec2{
		pt(cx+r, cy),
		pt(cx, cy-r),
		pt(cx-r, cy),
		pt(cx, cy+r),
	}
	p := (&path.Data{}).MoveTo(corners[0])
	for i := range 4 {
		a := corners[i]
		b := corners[(i+1)%4]
		step := b.Sub(a).Mul(1.0 / 3)
		p = p.CubeTo(a.Add(step), b.Sub(step), b)
	}
	return p.Close()
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// star builds a five-pointed star with ten corners.  The inner corners are
// at distance inner*r from the centre.  For inner = cos(pi/5) the inner
// corners lie on the edges of a regular pentagon.
func star(cx, cy, r, inner float64) *path.Data {
	p := &path.Data{}
	for i := range 10 {
		angle := float64(i)*math.Pi/5 - math.Pi/2
		radius := r
		if i%2 == 1 {
			radius = inner * r
		}
		v := pt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}
