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
	gocolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/monogram"
)

// WritePDF writes m to a single-page PDF file.  One unit of the mark's
// coordinate system becomes one PDF point.  A fully transparent
// background is left unpainted.
func WritePDF(fileName string, m *monogram.Mark, v Variant) error {
	paper := &pdf.Rectangle{
		URx: m.Width,
		URy: m.Height,
	}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if v.Background.A > 0 {
		page.SetFillColor(deviceColor(v.Background))
		page.Rectangle(0, 0, m.Width, m.Height)
		page.Fill()
	}

	// PDF has the origin at the bottom left, the mark at the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, m.Height})

	page.SetFillColor(deviceColor(v.Foreground))
	for _, s := range m.Shapes() {
		// PDF has no quadratic curves
		for cmd, pts := range s.Path.Iter().ToCubic() {
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

	monogram.Logger().Debug("pdf written", "file", fileName)
	return page.Close()
}

func deviceColor(c gocolor.NRGBA) color.Color {
	return color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
