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

package main

import (
	"fmt"

	"seehuhn.de/go/morph"
	"seehuhn.de/go/morph/geompath"
	"seehuhn.de/go/morph/morphcases"
)

// frame is one step of an interpolation sequence.
type frame struct {
	T    float64
	Path *geompath.Path
}

// makeFrames blends c.From into c.To in n evenly spaced steps.
// The first frame shows c.From, the last frame shows c.To.
func makeFrames(c morphcases.Case, n int) ([]frame, error) {
	from := geompath.FromData(c.From).Commands()
	to := geompath.FromData(c.To).Commands()

	steps, err := morph.Steps(to, from, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}

	frames := make([]frame, n)
	for k, cs := range steps {
		p, err := geompath.FromCmds(cs.Flatten())
		if err != nil {
			return nil, fmt.Errorf("%s, frame %d: %w", c.Name, k, err)
		}
		frames[k] = frame{T: float64(k) / float64(n-1), Path: p}
	}
	return frames, nil
}
