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
	"encoding/json"
	"image"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// writePDF draws all frames side by side on a single PDF page.
func writePDF(fileName string, frames []frame, width, height int) error {
	// Page size in points, one frame width per frame
	paper := &pdf.Rectangle{
		URx: float64(width * len(frames)),
		URy: float64(height),
	}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})
	page.SetFillColor(color.DeviceGray(0))

	for k, f := range frames {
		p := f.Path.Copy().Offset(float64(k*width), 0)

		// PDF has no quadratic curves
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	return page.Close()
}

// writePNG renders all frames side by side, black on white.
func writePNG(fileName string, frames []frame, width, height int) error {
	w, h := width*len(frames), height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for k, f := range frames {
		p := f.Path.Copy().Offset(float64(k*width), 0)

		z := vector.NewRasterizer(w, h)
		open := false
		for cmd, pts := range p.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				if open {
					z.ClosePath()
				}
				z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
				open = true
			case path.CmdLineTo:
				z.LineTo(float32(pts[0].X), float32(pts[0].Y))
			case path.CmdQuadTo:
				z.QuadTo(float32(pts[0].X), float32(pts[0].Y),
					float32(pts[1].X), float32(pts[1].Y))
			case path.CmdCubeTo:
				z.CubeTo(float32(pts[0].X), float32(pts[0].Y),
					float32(pts[1].X), float32(pts[1].Y),
					float32(pts[2].X), float32(pts[2].Y))
			case path.CmdClose:
				z.ClosePath()
				open = false
			}
		}
		if open {
			z.ClosePath()
		}
		z.Draw(img, img.Bounds(), image.Black, image.Point{})
	}

	out, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

type jsonOutput struct {
	Case   string      `json:"case"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Frames []jsonFrame `json:"frames"`
}

type jsonFrame struct {
	T    float64   `json:"t"`
	Cmds []float64 `json:"cmds"`
}

// writeJSON writes the flat command buffer of every frame.
func writeJSON(fileName, caseName string, frames []frame, width, height int) error {
	out := jsonOutput{
		Case:   caseName,
		Width:  width,
		Height: height,
	}
	for _, f := range frames {
		out.Frames = append(out.Frames, jsonFrame{T: f.T, Cmds: f.Path.Cmds()})
	}

	fd, err := os.Create(fileName)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(fd)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	return err
}
