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

// Package morph interpolates between vector paths.
//
// A path is exchanged with the geometry engine as a flat command buffer: a
// sequence of float64 values in which each verb tag is followed by a fixed
// number of operands.  [Segment] splits such a buffer into [Commands].
// Two command sequences with the same verbs (and the same conic weights) can
// be blended using [Lerp]; [Interpolate] does the same for engine paths and
// hands the result back to the engine.
package morph
