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

package monogram

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Part identifies one of the drawable parts of the mark.
type Part int

// The parts of the mark, in paint order.
const (
	PartSpine Part = iota
	PartU
	PartCTop
	PartCBottom
)

// Class returns the CSS class name used for the part in SVG output.
func (p Part) Class() string {
	switch p {
	case PartSpine:
		return "uc-spine"
	case PartU:
		return "uc-u"
	case PartCTop:
		return "uc-ctop"
	case PartCBottom:
		return "uc-cbot"
	}
	return ""
}

func (p Part) String() string {
	switch p {
	case PartSpine:
		return "spine"
	case PartU:
		return "u"
	case PartCTop:
		return "c-top"
	case PartCBottom:
		return "c-bottom"
	}
	return "unknown"
}

// Mark is the geometry of one monogram.
// All coordinates are in the y-down system of [Layout]; the mark fits
// into the box [0, Width] × [0, Height].
type Mark struct {
	Width  float64 // right edge of the C
	Height float64 // total height from the parameter record

	Spine   []rect.Rect // one rectangle, or two in split mode
	U       *path.Data
	CTop    *path.Data
	CBottom *path.Data

	Layout Layout
}

// Compute builds the mark described by p.
// Compute is a pure function of its arguments.
func Compute(p Params, opt Options) *Mark {
	l := NewLayout(p, opt)
	return &Mark{
		Width:   l.CRight,
		Height:  p.TotalHeight,
		Spine:   l.SpineRects(),
		U:       l.UPath(),
		CTop:    l.CTopPath(),
		CBottom: l.CBottomPath(),
		Layout:  l,
	}
}

// Shape is a filled region of the mark.
type Shape struct {
	Part Part
	Path *path.Data
}

// Shapes returns all filled regions in paint order.  Spine rectangles are
// converted to closed paths.
func (m *Mark) Shapes() []Shape {
	res := make([]Shape, 0, len(m.Spine)+3)
	for _, r := range m.Spine {
		res = append(res, Shape{Part: PartSpine, Path: rectPath(r)})
	}
	res = append(res,
		Shape{Part: PartU, Path: m.U},
		Shape{Part: PartCTop, Path: m.CTop},
		Shape{Part: PartCBottom, Path: m.CBottom},
	)
	return res
}

// PathStrings returns the SVG path data of the three glyph outlines,
// in the order U, top arm, bottom arm.
func (m *Mark) PathStrings() [3]string {
	return [3]string{
		FormatPath(m.U),
		FormatPath(m.CTop),
		FormatPath(m.CBottom),
	}
}
