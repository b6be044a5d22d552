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

// Package render produces raster images and PDF files of the monogram.
package render

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/monogram"
)

// Options controls raster output.
type Options struct {
	// Height is the image height in pixels.  The width follows from the
	// aspect ratio of the mark.
	Height int

	// Variant gives the colours.  The zero value draws in transparent
	// black on a transparent background, so callers normally pick one of
	// [Variants].
	Variant Variant
}

// Coverage rasterises m at the given pixel height and returns the
// coverage of every pixel in row-major order, together with the image
// width.  Shapes are filled separately and their coverage is summed.
// This is exact for shapes which only touch along an edge; see
// [rasterShapes] for the one overlap in the mark.
func Coverage(m *monogram.Mark, height int) (cov []float32, width int) {
	if height <= 0 || m.Height <= 0 {
		return nil, 0
	}
	scale := float64(height) / m.Height
	width = int(math.Ceil(m.Width*scale - 1e-9))
	if width <= 0 {
		return nil, 0
	}

	r := NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	r.CTM = matrix.Scale(scale, scale)

	cov = make([]float32, width*height)
	shapes := rasterShapes(m)
	for _, s := range shapes {
		r.Fill(s.Path, func(y, xMin int, c []float32) {
			row := cov[y*width+xMin:]
			for i, v := range c {
				row[i] = min(row[i]+v, 1)
			}
		})
	}

	monogram.Logger().Debug("mark rasterised",
		"width", width, "height", height, "shapes", len(shapes))
	return cov, width
}

// rasterShapes returns the shapes of m with the U cut back to the left
// edge of the spine.  The part of the U right of that line lies inside
// the spine, and their coinciding edges would otherwise be counted twice.
// The cut is only made where it crosses straight edges of the U.
func rasterShapes(m *monogram.Mark) []monogram.Shape {
	shapes := m.Shapes()

	l := m.Layout
	cut := l.SpineLeft
	straight := l.UInnerLeft+l.Radii.UInnerBend <= cut && l.Radii.UBottomLeft <= cut
	if !straight || cut >= l.URightEdge {
		return shapes
	}
	l.URightEdge = cut
	for i := range shapes {
		if shapes[i].Part == monogram.PartU {
			shapes[i].Path = l.UPath()
		}
	}
	return shapes
}

// Image renders m into a new image.
func Image(m *monogram.Mark, opt Options) *image.NRGBA {
	cov, width := Coverage(m, opt.Height)
	img := image.NewNRGBA(image.Rect(0, 0, width, max(opt.Height, 0)))
	if width == 0 {
		return img
	}

	bg, fg := opt.Variant.Background, opt.Variant.Foreground
	bgA, fgA := float32(bg.A)/255, float32(fg.A)/255
	for i, c := range cov {
		// premultiplied weights of background and foreground
		wb, wf := bgA*(1-c), fgA*c
		a := wb + wf
		px := img.Pix[4*i : 4*i+4]
		if a <= 0 {
			px[0], px[1], px[2], px[3] = 0, 0, 0, 0
			continue
		}
		px[0] = toByte((float32(bg.R)*wb + float32(fg.R)*wf) / a)
		px[1] = toByte((float32(bg.G)*wb + float32(fg.G)*wf) / a)
		px[2] = toByte((float32(bg.B)*wb + float32(fg.B)*wf) / a)
		px[3] = toByte(a * 255)
	}
	return img
}

func toByte(v float32) uint8 {
	return uint8(max(0, min(255, v+0.5)))
}
