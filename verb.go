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

import "strconv"

// Verb identifies a path construction primitive.
// The numeric values are the tags used in flat command buffers.
type Verb int

// These are the verbs which can occur in a flat command buffer.
const (
	Move  Verb = 0 // x, y
	Line  Verb = 1 // x, y
	Quad  Verb = 2 // cx, cy, x, y
	Conic Verb = 3 // cx, cy, x, y, weight
	Cubic Verb = 4 // c1x, c1y, c2x, c2y, x, y
	Close Verb = 5 // no operands
)

// cmdLens gives the total number of tokens of a command,
// including the verb tag itself.
var cmdLens = [...]int{
	Move:  3,
	Line:  3,
	Quad:  5,
	Conic: 6,
	Cubic: 7,
	Close: 1,
}

// conicWeight is the position of the weight within a Conic command.
const conicWeight = 5

// Valid reports whether v is one of the known verbs.
func (v Verb) Valid() bool {
	return v >= 0 && int(v) < len(cmdLens)
}

// Len returns the number of tokens a command with verb v occupies in a flat
// buffer, including the verb tag.  For unknown verbs, 0 is returned.
func (v Verb) Len() int {
	if !v.Valid() {
		return 0
	}
	return cmdLens[v]
}

// ParseVerb converts a verb tag from a flat command buffer into a verb.
// The second return value is false if tok is not the tag of a known verb.
// Tags which are not integral map to an invalid verb.
func ParseVerb(tok float64) (Verb, bool) {
	v := Verb(tok)
	if float64(v) != tok {
		return -1, false
	}
	return v, v.Valid()
}

func (v Verb) String() string {
	switch v {
	case Move:
		return "Move"
	case Line:
		return "Line"
	case Quad:
		return "Quad"
	case Conic:
		return "Conic"
	case Cubic:
		return "Cubic"
	case Close:
		return "Close"
	default:
		return "Verb(" + strconv.Itoa(int(v)) + ")"
	}
}
