// seehuhn.de/go/monogram - vector geometry for the UC monogram
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

// Command genpdf generates reference images for the render tests.
// It writes a PDF for every test case and renders it to PNG using
// Ghostscript.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"

	"seehuhn.de/go/monogram/render"
	"seehuhn.de/go/monogram/testcases"
)

const refDir = "testdata/reference"

// White on black, so that the gray value of a pixel is its coverage.
var coverageVariant = render.Variant{
	Background: color.NRGBA{A: 255},
	Foreground: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
}

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			m := tc.Mark()
			if err := render.WritePDF(pdfPath, m, coverageVariant); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			// one PDF unit per mark unit, scaled to tc.Height pixels
			dpi := 72 * float64(tc.Height) / m.Height
			if err := renderPNG(pdfPath, pngPath, dpi); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderPNG(pdfPath, pngPath string, dpi float64) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r"+strconv.FormatFloat(dpi, 'f', -1, 64),
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
