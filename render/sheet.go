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

package render

import (
	"image"
	"io"

	"github.com/disintegration/imaging"

	"seehuhn.de/go/monogram"
)

// PreviewSizes are the pixel heights used for the small-size previews.
var PreviewSizes = []int{48, 32, 20, 14}

// sheetGap is the space between previews and around the sheet, in pixels.
const sheetGap = 14

// ContactSheet renders m at each of the given pixel heights and places
// the renderings next to each other, aligned at the bottom, on a
// background of the variant's colour.  If sizes is empty, [PreviewSizes]
// is used.
func ContactSheet(m *monogram.Mark, v Variant, sizes []int) *image.NRGBA {
	if len(sizes) == 0 {
		sizes = PreviewSizes
	}

	tiles := make([]*image.NRGBA, 0, len(sizes))
	width, height := sheetGap, 0
	for _, h := range sizes {
		if h <= 0 {
			continue
		}
		tile := Image(m, Options{Height: h, Variant: v})
		tiles = append(tiles, tile)
		width += tile.Bounds().Dx() + sheetGap
		height = max(height, h)
	}
	height += 2 * sheetGap

	sheet := imaging.New(width, height, v.Background)
	x := sheetGap
	for _, tile := range tiles {
		b := tile.Bounds()
		pos := image.Pt(x, height-sheetGap-b.Dy())
		sheet = imaging.Overlay(sheet, tile, pos, 1)
		x += b.Dx() + sheetGap
	}
	return sheet
}

// EncodePNG writes img in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}
