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
	"fmt"
	"slices"
)

// Command is a single path command: the verb tag, followed by the operands
// for this verb.  The length of a well-formed command is Verb().Len().
type Command []float64

// Verb returns the verb of the command.
func (c Command) Verb() Verb {
	v, _ := ParseVerb(c[0])
	return v
}

// Operands returns the coordinates (and, for Conic, the weight) which follow
// the verb tag.
func (c Command) Operands() []float64 {
	return c[1:]
}

// Commands is the command sequence describing the geometry of one path.
type Commands []Command

// Verbs returns the verbs of all commands, in order.
func (cs Commands) Verbs() []Verb {
	res := make([]Verb, len(cs))
	for i, c := range cs {
		res[i] = c.Verb()
	}
	return res
}

// Flatten concatenates the commands into a flat command buffer.
func (cs Commands) Flatten() []float64 {
	n := 0
	for _, c := range cs {
		n += len(c)
	}
	buf := make([]float64, 0, n)
	for _, c := range cs {
		buf = append(buf, c...)
	}
	return buf
}

// Clone returns a deep copy of cs.
func (cs Commands) Clone() Commands {
	if cs == nil {
		return nil
	}
	res := make(Commands, len(cs))
	for i, c := range cs {
		res[i] = slices.Clone(c)
	}
	return res
}

// Segment splits a flat command buffer into commands.
//
// The buffer must be well-formed: read from left to right, every verb tag
// must be followed by exactly the number of operands given by Verb.Len, with
// no tokens left over.  Buffers obtained from a geometry engine satisfy this.
// Segment panics if it finds an unknown verb or if the final command is
// incomplete.
//
// The returned commands do not share memory with buf.
func Segment(buf []float64) Commands {
	if len(buf) == 0 {
		return nil
	}

	res := Commands{nil}
	need := 0
	for i, tok := range buf {
		cur := &res[len(res)-1]
		if len(*cur) == 0 {
			v, ok := ParseVerb(tok)
			if !ok {
				panic(fmt.Sprintf("morph: unknown verb %g at position %d", tok, i))
			}
			need = v.Len()
			*cur = make(Command, 1, need)
			(*cur)[0] = tok
		} else if len(*cur) < need {
			*cur = append(*cur, tok)
		}

		// The final command stays the active one, so that no empty
		// command is left dangling at the end.
		if len(*cur) == need && i != len(buf)-1 {
			res = append(res, nil)
		}
	}

	if last := res[len(res)-1]; len(last) != need {
		panic(fmt.Sprintf("morph: incomplete %s command at end of buffer", last.Verb()))
	}
	return res
}
