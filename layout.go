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

// Options holds per-call settings which are not part of the parameter
// record.
type Options struct {
	// AutoReturn makes the C returns as long as the stroke is wide,
	// ignoring the stored CReturnLength.
	AutoReturn bool
}

// Layout holds the absolute coordinates derived from a parameter record.
// The coordinate system has the origin at the top-left corner of the
// output box, with y growing downwards.
type Layout struct {
	Stroke float64 // stroke width

	PadY float64 // space above and below the letters

	// U glyph.
	UTop, UBottom float64
	URight        float64 // right edge of the U box, equal to the spine's right edge
	UInnerLeft    float64 // inner edge of the vertical stroke
	UInnerBottom  float64 // inner edge of the horizontal stroke
	URightEdge    float64 // where the U outline ends on the right

	// Spine.
	SpineThickness float64
	SpineLeft      float64
	SpineRight     float64
	SpineMid       float64
	SpineTop       float64
	SpineBottom    float64
	UCSpacing      float64
	Split          bool

	// C glyph.
	CArmLeft     float64 // left end of both arms
	CRight       float64
	CTop         float64
	CBottom      float64
	CTopInner    float64 // lower edge of the top arm
	CBottomInner float64 // upper edge of the bottom arm

	// Gap between the C returns.
	Mid            float64 // vertical centre of the letters
	GapTopEnd      float64 // lower end of the top return
	GapBottomStart float64 // upper end of the bottom return

	ReturnLength float64 // effective length of the C returns

	Radii Radii
}

// NewLayout computes the layout for p.
func NewLayout(p Params, opt Options) Layout {
	t := p.StrokeWidth
	ret := p.CReturnLength
	if opt.AutoReturn {
		ret = t
	}

	var l Layout
	l.Stroke = t
	l.ReturnLength = ret
	l.Radii = ClampRadii(p, ret)

	l.PadY = (p.TotalHeight - p.LetterHeight) / 2

	l.UTop = l.PadY
	l.UBottom = l.PadY + p.LetterHeight
	l.URight = p.UWidth
	l.UInnerLeft = t
	l.UInnerBottom = l.UBottom - t

	l.SpineThickness = p.SpineThickness
	l.SpineLeft = l.URight - p.SpineThickness
	l.SpineRight = l.URight
	l.SpineMid = l.SpineLeft + p.SpineThickness/2
	l.UCSpacing = p.UCSpacing
	l.Split = p.SplitSpine

	if l.Split {
		l.URightEdge = l.SpineMid
	} else {
		l.URightEdge = l.SpineRight
	}

	// Anchored to the full spine in both modes: SplitSpine never moves
	// the C.
	l.CArmLeft = l.SpineRight + p.UCSpacing
	l.CRight = l.CArmLeft + p.CWidth
	l.CTop = l.PadY
	l.CBottom = l.PadY + p.LetterHeight
	l.CTopInner = l.CTop + t
	l.CBottomInner = l.CBottom - t

	l.Mid = (l.CTop + l.CBottom) / 2
	l.GapTopEnd = l.Mid - p.CGap/2
	l.GapBottomStart = l.Mid + p.CGap/2

	l.SpineTop = min(l.UTop, l.CTop)
	l.SpineBottom = max(l.UBottom, l.CBottom)

	return l
}
