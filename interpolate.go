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
	"errors"
	"fmt"
	"log/slog"
)

// ErrNotInterpolatable is returned (possibly wrapped) when two paths cannot
// be blended, either because their command sequences differ in structure
// or because the geometry engine rejects the blended result.
var ErrNotInterpolatable = errors.New("paths are not interpolatable")

// Path is implemented by geometry engine paths which can report their
// current geometry as a flat command buffer.
type Path interface {
	Cmds() []float64
}

// Compatible reports whether a and b can be interpolated.  This is the case
// if both sequences have the same length, the same verb at every position,
// and equal weights for all Conic commands.
func Compatible(a, b Commands) bool {
	return mismatch(a, b) < 0
}

// mismatch returns the index of the first command at which a and b are not
// compatible, or -1 if the sequences are compatible.  For sequences of
// different length, the length of the shorter sequence is returned.
func mismatch(a, b Commands) int {
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	for i := range a {
		v := a[i].Verb()
		if v != b[i].Verb() {
			return i
		}
		if v == Conic && a[i][conicWeight] != b[i][conicWeight] {
			return i
		}
	}
	return -1
}

// Lerp blends two compatible command sequences.
//
// The result is b for t=0 and a for t=1; every coordinate is computed as
// b + (a-b)*t.  The parameter t is not clamped, so values outside [0, 1]
// extrapolate.  Conic weights are copied from a unchanged.
//
// If a and b are not compatible, the returned error wraps
// ErrNotInterpolatable.
func Lerp(a, b Commands, t float64) (Commands, error) {
	if i := mismatch(a, b); i >= 0 {
		err := fmt.Errorf("%w: command %d differs", ErrNotInterpolatable, i)
		Logger().Debug("interpolation failed",
			slog.Int("index", i),
			slog.Int("lenA", len(a)),
			slog.Int("lenB", len(b)))
		return nil, err
	}

	res := make(Commands, len(a))
	for i, ca := range a {
		cb := b[i]
		isConic := ca.Verb() == Conic

		c := make(Command, len(ca))
		c[0] = ca[0]
		for j := 1; j < len(ca); j++ {
			if isConic && j == conicWeight {
				c[j] = ca[j]
				continue
			}
			c[j] = cb[j] + (ca[j]-cb[j])*t
		}
		res[i] = c
	}
	return res, nil
}

// Steps returns n blends of a and b, for evenly spaced values of t from 0
// to 1.  The first element equals b and the last element equals a,
// up to rounding.
// n must be at least 2.
func Steps(a, b Commands, n int) ([]Commands, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 steps, got %d", n)
	}
	if !Compatible(a, b) {
		return nil, ErrNotInterpolatable
	}

	res := make([]Commands, n)
	for k := range n {
		t := float64(k) / float64(n-1)
		cs, err := Lerp(a, b, t)
		if err != nil {
			return nil, err
		}
		res[k] = cs
	}
	return res, nil
}

// Interpolatable reports whether the geometry of a and b can be blended.
// Use this to decide whether to attempt an interpolation, without building
// the result.
func Interpolatable(a, b Path) bool {
	return Compatible(Segment(a.Cmds()), Segment(b.Cmds()))
}

// Interpolate blends the geometry of a and b at parameter t (see Lerp) and
// passes the flattened result to build, which materialises a new path.
//
// On failure the returned error wraps ErrNotInterpolatable.  This covers both
// structurally incompatible paths and buffers rejected by build.
func Interpolate[P any](a, b Path, t float64, build func([]float64) (P, error)) (P, error) {
	var zero P

	cs, err := Lerp(Segment(a.Cmds()), Segment(b.Cmds()), t)
	if err != nil {
		return zero, err
	}

	p, err := build(cs.Flatten())
	if err != nil {
		Logger().Debug("interpolated path rejected", slog.Any("error", err))
		return zero, fmt.Errorf("%w: %w", ErrNotInterpolatable, err)
	}
	return p, nil
}
