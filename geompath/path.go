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

// Package geompath connects seehuhn.de/go/geom paths to package morph.
//
// A [Path] wraps a [path.Data] and exchanges its geometry with package morph
// as a flat command buffer.  The geom package has no rational curves, so
// conic segments are only accepted if their weight is 1, in which case they
// are stored as quadratic Bézier curves.
package geompath

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/morph"
)

// These errors are returned by FromCmds, possibly wrapped.
var (
	ErrMalformed = errors.New("malformed command buffer")
	ErrNonFinite = errors.New("non-finite coordinate")
	ErrConic     = errors.New("unsupported conic weight")
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// Path is a vector path, stored in a [path.Data].
// Editing methods modify the path in place and return it, to allow chaining.
type Path struct {
	data *path.Data
}

// New returns an empty path.
func New() *Path {
	return &Path{data: &path.Data{}}
}

// FromData wraps d.  The path shares memory with d.
func FromData(d *path.Data) *Path {
	if d == nil {
		d = &path.Data{}
	}
	return &Path{data: d}
}

// FromCmds builds a path from a flat command buffer, as produced by
// [Path.Cmds] or [morph.Commands.Flatten].
//
// The buffer is rejected if it is malformed, if it contains NaN or infinite
// values, or if it contains a conic segment with a weight other than 1.
func FromCmds(buf []float64) (*Path, error) {
	d := &path.Data{}
	for i := 0; i < len(buf); {
		v, ok := morph.ParseVerb(buf[i])
		if !ok {
			return nil, reject(fmt.Errorf("%w: unknown verb %g at position %d", ErrMalformed, buf[i], i))
		}
		n := v.Len()
		if i+n > len(buf) {
			return nil, reject(fmt.Errorf("%w: incomplete %s command at position %d", ErrMalformed, v, i))
		}

		ops := buf[i+1 : i+n]
		for _, x := range ops {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, reject(fmt.Errorf("%w in %s command at position %d", ErrNonFinite, v, i))
			}
		}

		switch v {
		case morph.Move:
			d = d.MoveTo(pt(ops[0], ops[1]))
		case morph.Line:
			d = d.LineTo(pt(ops[0], ops[1]))
		case morph.Quad:
			d = d.QuadTo(pt(ops[0], ops[1]), pt(ops[2], ops[3]))
		case morph.Conic:
			if w := ops[4]; w != 1 {
				return nil, reject(fmt.Errorf("%w %g at position %d", ErrConic, w, i))
			}
			d = d.QuadTo(pt(ops[0], ops[1]), pt(ops[2], ops[3]))
		case morph.Cubic:
			d = d.CubeTo(pt(ops[0], ops[1]), pt(ops[2], ops[3]), pt(ops[4], ops[5]))
		case morph.Close:
			d = d.Close()
		}
		i += n
	}
	return &Path{data: d}, nil
}

func reject(err error) error {
	morph.Logger().Debug("command buffer rejected", slog.Any("error", err))
	return err
}

// Cmds returns the geometry of p as a flat command buffer.
func (p *Path) Cmds() []float64 {
	d := p.data
	buf := make([]float64, 0, len(d.Cmds)+2*len(d.Coords))

	coordIdx := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			c := d.Coords[coordIdx]
			buf = append(buf, float64(morph.Move), c.X, c.Y)
			coordIdx++

		case path.CmdLineTo:
			c := d.Coords[coordIdx]
			buf = append(buf, float64(morph.Line), c.X, c.Y)
			coordIdx++

		case path.CmdQuadTo:
			c := d.Coords[coordIdx : coordIdx+2]
			buf = append(buf, float64(morph.Quad), c[0].X, c[0].Y, c[1].X, c[1].Y)
			coordIdx += 2

		case path.CmdCubeTo:
			c := d.Coords[coordIdx : coordIdx+3]
			buf = append(buf, float64(morph.Cubic),
				c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y)
			coordIdx += 3

		case path.CmdClose:
			buf = append(buf, float64(morph.Close))
		}
	}
	return buf
}

// Commands returns the geometry of p as a command sequence.
func (p *Path) Commands() morph.Commands {
	return morph.Segment(p.Cmds())
}

// Data returns the underlying path data.
func (p *Path) Data() *path.Data {
	return p.data
}

// Iter returns an iterator over the segments of p.
func (p *Path) Iter() path.Path {
	return p.data.Iter()
}

// Interpolate blends p and end.  The result equals end for t=0 and p for
// t=1, up to rounding.
//
// The returned error wraps [morph.ErrNotInterpolatable] if the two paths have
// different structure, or if [FromCmds] rejects the blended buffer.  In the
// latter case the error also wraps the rejection reason, for example
// [ErrNonFinite] when the blend overflows.
func (p *Path) Interpolate(end *Path, t float64) (*Path, error) {
	return morph.Interpolate(p, end, t, FromCmds)
}

// IsInterpolatable reports whether p and other can be blended using
// [Path.Interpolate].
func (p *Path) IsInterpolatable(other *Path) bool {
	return morph.Interpolatable(p, other)
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.data = p.data.MoveTo(pt(x, y))
	return p
}

// LineTo appends a straight line to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.data = p.data.LineTo(pt(x, y))
	return p
}

// QuadTo appends a quadratic Bézier curve with control point (cx, cy),
// ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.data = p.data.QuadTo(pt(cx, cy), pt(x, y))
	return p
}

// CubeTo appends a cubic Bézier curve with control points (c1x, c1y) and
// (c2x, c2y), ending at (x, y).
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.data = p.data.CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x, y))
	return p
}

// RMoveTo starts a new subpath, offset by (dx, dy) from the current point.
func (p *Path) RMoveTo(dx, dy float64) *Path {
	p.data = p.data.MoveTo(p.current().Add(pt(dx, dy)))
	return p
}

// RLineTo appends a straight line, ending (dx, dy) away from the current
// point.
func (p *Path) RLineTo(dx, dy float64) *Path {
	p.data = p.data.LineTo(p.current().Add(pt(dx, dy)))
	return p
}

// RQuadTo is like [Path.QuadTo], but all coordinates are relative to the
// current point.
func (p *Path) RQuadTo(dcx, dcy, dx, dy float64) *Path {
	c := p.current()
	p.data = p.data.QuadTo(c.Add(pt(dcx, dcy)), c.Add(pt(dx, dy)))
	return p
}

// RCubeTo is like [Path.CubeTo], but all coordinates are relative to the
// current point.
func (p *Path) RCubeTo(dc1x, dc1y, dc2x, dc2y, dx, dy float64) *Path {
	c := p.current()
	p.data = p.data.CubeTo(c.Add(pt(dc1x, dc1y)), c.Add(pt(dc2x, dc2y)), c.Add(pt(dx, dy)))
	return p
}

// current returns the point where the next segment starts.  After a
// ClosePath this is the start of the closed subpath.  An empty path starts
// at the origin.
func (p *Path) current() vec.Vec2 {
	d := p.data
	n := len(d.Cmds)
	if n == 0 {
		return vec.Vec2{}
	}
	if d.Cmds[n-1] != path.CmdClose {
		return d.Coords[len(d.Coords)-1]
	}

	var start vec.Vec2
	coordIdx := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			start = d.Coords[coordIdx]
			coordIdx++
		case path.CmdLineTo:
			coordIdx++
		case path.CmdQuadTo:
			coordIdx += 2
		case path.CmdCubeTo:
			coordIdx += 3
		}
	}
	return start
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.data = p.data.Close()
	return p
}

// AddRect appends r as a closed subpath.
func (p *Path) AddRect(r rect.Rect) *Path {
	return p.MoveTo(r.LLx, r.LLy).
		LineTo(r.URx, r.LLy).
		LineTo(r.URx, r.URy).
		LineTo(r.LLx, r.URy).
		Close()
}

// AddOval appends the ellipse inscribed in r as a closed subpath made of
// four cubic Bézier curves.  The subpath starts at the right-most point.
func (p *Path) AddOval(r rect.Rect) *Path {
	c := pt((r.LLx+r.URx)/2, (r.LLy+r.URy)/2)
	rx := vec.Vec2{X: (r.URx - r.LLx) / 2}
	ry := vec.Vec2{Y: (r.URy - r.LLy) / 2}
	kx, ky := rx.Mul(kappa), ry.Mul(kappa)

	right, left := c.Add(rx), c.Sub(rx)
	top, bottom := c.Sub(ry), c.Add(ry)
	p.data = p.data.MoveTo(right).
		CubeTo(right.Sub(ky), top.Add(kx), top).
		CubeTo(top.Sub(kx), left.Sub(ky), left).
		CubeTo(left.Add(ky), bottom.Sub(kx), bottom).
		CubeTo(bottom.Add(kx), right.Add(ky), right).
		Close()
	return p
}

// AddCircle appends an approximate circle with centre (cx, cy) and radius r.
func (p *Path) AddCircle(cx, cy, r float64) *Path {
	return p.AddOval(rect.Rect{LLx: cx - r, LLy: cy - r, URx: cx + r, URy: cy + r})
}

// AddPoly appends a polygon through the given points.
// If close is true, the subpath is closed.
func (p *Path) AddPoly(pts []vec.Vec2, close bool) *Path {
	if len(pts) == 0 {
		return p
	}
	p.data = p.data.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.data = p.data.LineTo(q)
	}
	if close {
		p.data = p.data.Close()
	}
	return p
}

// Offset translates all points of p by (dx, dy).
func (p *Path) Offset(dx, dy float64) *Path {
	d := pt(dx, dy)
	for i, c := range p.data.Coords {
		p.data.Coords[i] = c.Add(d)
	}
	return p
}

// Transform applies the affine transformation m to all points of p.
func (p *Path) Transform(m matrix.Matrix) *Path {
	for i, c := range p.data.Coords {
		x, y := m.Apply(c.X, c.Y)
		p.data.Coords[i] = pt(x, y)
	}
	return p
}

// Reset removes all segments, keeping the allocated memory.
func (p *Path) Reset() *Path {
	p.data.Cmds = p.data.Cmds[:0]
	p.data.Coords = p.data.Coords[:0]
	return p
}

// IsEmpty reports whether p has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.data.Cmds) == 0
}

// CountPoints returns the number of points (end points and control points)
// stored in p.
func (p *Path) CountPoints() int {
	return len(p.data.Coords)
}

// Point returns the i-th point of p.
func (p *Path) Point(i int) vec.Vec2 {
	return p.data.Coords[i]
}

// LastPoint returns the last point of p.
// The second return value is false if p has no points.
func (p *Path) LastPoint() (vec.Vec2, bool) {
	n := len(p.data.Coords)
	if n == 0 {
		return vec.Vec2{}, false
	}
	return p.data.Coords[n-1], true
}

// Bounds returns the smallest rectangle containing all points of p,
// including control points.  For an empty path, the zero rectangle is
// returned.
func (p *Path) Bounds() rect.Rect {
	return p.data.Iter().BBox()
}

// Equal reports whether p and other consist of the same segments.
func (p *Path) Equal(other *Path) bool {
	return slices.Equal(p.data.Cmds, other.data.Cmds) &&
		slices.Equal(p.data.Coords, other.data.Coords)
}

// Copy returns a deep copy of p.
func (p *Path) Copy() *Path {
	return &Path{data: &path.Data{
		Cmds:   slices.Clone(p.data.Cmds),
		Coords: slices.Clone(p.data.Coords),
	}}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
