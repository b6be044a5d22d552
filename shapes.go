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
	"seehuhn.de/go/geom/vec"
)

// UPath returns the closed outline of the U glyph.
//
// The outline starts at the top edge of the vertical stroke, runs down the
// inner edge, along the inner edge of the bottom stroke to the right
// edge, and back along the outer edges.  Three corners can be rounded:
// the inner bend and the outer bottom-left and top-left corners.
func (l *Layout) UPath() *path.Data {
	r := l.Radii
	left, top, bottom := 0.0, l.UTop, l.UBottom
	in, inBottom := l.UInnerLeft, l.UInnerBottom

	p := (&path.Data{}).
		MoveTo(pt(left+r.UTopLeft, top)).
		LineTo(pt(in, top))
	corner(p, pt(in, inBottom-r.UInnerBend), pt(in, inBottom), pt(in+r.UInnerBend, inBottom), r.UInnerBend)
	p.LineTo(pt(l.URightEdge, inBottom)).
		LineTo(pt(l.URightEdge, bottom))
	corner(p, pt(left+r.UBottomLeft, bottom), pt(left, bottom), pt(left, bottom-r.UBottomLeft), r.UBottomLeft)
	corner(p, pt(left, top+r.UTopLeft), pt(left, top), pt(left+r.UTopLeft, top), r.UTopLeft)
	return p.Close()
}

// CTopPath returns the closed outline of the top arm of the C, including
// its return.
func (l *Layout) CTopPath() *path.Data {
	r := l.Radii
	return l.armPath(l.CTop, l.CTopInner, l.GapTopEnd, r.CTopOuter, r.CTopInner, r.GapTop, 1)
}

// CBottomPath returns the closed outline of the bottom arm of the C.
// The outline is the mirror image of the top arm's outline.
func (l *Layout) CBottomPath() *path.Data {
	r := l.Radii
	return l.armPath(l.CBottom, l.CBottomInner, l.GapBottomStart, r.CBottomOuter, r.CBottomInner, r.GapBottom, -1)
}

// armPath builds one C arm.  edgeY is the outer edge of the arm, innerY
// its inner edge, and mouthY the end of the return at the gap.  The sign
// s is +1 if the arm extends downwards from edgeY and -1 if it extends
// upwards.
func (l *Layout) armPath(edgeY, innerY, mouthY, outerR, innerR, gapR, s float64) *path.Data {
	right := l.CRight
	retLeft := right - l.ReturnLength
	innerX := right - l.Stroke

	p := (&path.Data{}).MoveTo(pt(l.CArmLeft, edgeY))

	// outer corner at the far right
	corner(p, pt(right-outerR, edgeY), pt(right, edgeY), pt(right, edgeY+s*outerR), outerR)

	// outer and inner corners at the mouth of the gap
	corner(p, pt(right, mouthY-s*gapR), pt(right, mouthY), pt(right-gapR, mouthY), gapR)
	corner(p, pt(right-l.ReturnLength+gapR, mouthY), pt(retLeft, mouthY), pt(retLeft, mouthY-s*gapR), gapR)

	// inner corner where the return meets the arm
	corner(p, pt(innerX, innerY+s*innerR), pt(innerX, innerY), pt(innerX-innerR, innerY), innerR)

	return p.LineTo(pt(l.CArmLeft, innerY)).Close()
}

// SpineRects returns the spine as one rectangle, or as two half-width
// rectangles in split mode.  The rectangles use the y-down coordinates of
// the layout: LLy is the top edge and URy the bottom edge.
//
// In split mode the left piece stays attached to the U and the right piece
// is shifted right by the U-C spacing, so that it touches the C arms.
func (l *Layout) SpineRects() []rect.Rect {
	if !l.Split {
		return []rect.Rect{{
			LLx: l.SpineLeft, LLy: l.SpineTop,
			URx: l.SpineLeft + l.SpineThickness, URy: l.SpineBottom,
		}}
	}
	half := l.SpineThickness / 2
	return []rect.Rect{
		{
			LLx: l.SpineLeft, LLy: l.SpineTop,
			URx: l.SpineLeft + half, URy: l.SpineBottom,
		},
		{
			LLx: l.SpineMid + l.UCSpacing, LLy: l.SpineTop,
			URx: l.SpineMid + l.UCSpacing + half, URy: l.SpineBottom,
		},
	}
}

// corner continues p along an edge towards the sharp corner c and turns
// onto the next edge.  a and e are the tangent points at distance r
// before and after c.  For r > 0 the corner is replaced by a quadratic
// curve with control point c; otherwise the path passes through c.
func corner(p *path.Data, a, c, e vec.Vec2, r float64) {
	p.LineTo(a)
	if r > 0 {
		p.QuadTo(c, e)
	} else {
		p.LineTo(c)
	}
}

// rectPath converts a spine rectangle into a closed path.
func rectPath(r rect.Rect) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(r.LLx, r.LLy)).
		LineTo(pt(r.URx, r.LLy)).
		LineTo(pt(r.URx, r.URy)).
		LineTo(pt(r.LLx, r.URy)).
		Close()
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
