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

// Command morph renders interpolation sequences between pairs of paths.
//
// With -list, the available cases are shown.  Otherwise the case given by
// -case is blended in -frames steps and written to the file given by -o.
// The output format is chosen by the file name extension: ".pdf" and ".png"
// give a filmstrip of all frames side by side, ".json" gives the flat
// command buffer of every frame.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/pterm/pterm"

	"seehuhn.de/go/morph"
	"seehuhn.de/go/morph/morphcases"
)

func main() {
	initDisplay()

	list := flag.Bool("list", false, "list the available cases")
	caseName := flag.String("case", "shape_diamond_to_circle", "case to render, as category_name")
	numFrames := flag.Int("frames", 6, "number of frames")
	outName := flag.String("o", "morph.pdf", "output file (.pdf, .png or .json)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		morph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *list {
		listCases()
		return
	}

	c, ok := morphcases.Lookup(*caseName)
	if !ok {
		pterm.Error.Printf("unknown case %q, use -list to see all cases\n", *caseName)
		os.Exit(2)
	}

	frames, err := makeFrames(c, *numFrames)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(3)
	}

	switch ext := filepath.Ext(*outName); ext {
	case ".pdf":
		err = writePDF(*outName, frames, c.Width, c.Height)
	case ".png":
		err = writePNG(*outName, frames, c.Width, c.Height)
	case ".json":
		err = writeJSON(*outName, *caseName, frames, c.Width, c.Height)
	default:
		err = fmt.Errorf("unsupported output format %q", ext)
	}
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(4)
	}
	pterm.Info.Printf("wrote %d frames of %s to %s\n", len(frames), *caseName, *outName)
}

// listCases prints a table of all cases.
func listCases() {
	data := [][]string{{"case", "size", "interpolatable"}}
	for _, category := range slices.Sorted(maps.Keys(morphcases.All)) {
		for _, c := range morphcases.All[category] {
			data = append(data, []string{
				category + "_" + c.Name,
				strconv.Itoa(c.Width) + "x" + strconv.Itoa(c.Height),
				strconv.FormatBool(c.Interpolatable),
			})
		}
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " morph ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
