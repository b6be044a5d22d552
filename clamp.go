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

// Radii holds the corner radii after clamping.
type Radii struct {
	UBottomLeft float64 // outer bottom-left corner of the U
	UTopLeft    float64 // outer top-left corner of the U
	UInnerBend  float64 // inner bottom-left bend of the U, derived from UBottomLeft

	CTopOuter    float64
	CTopInner    float64
	CBottomOuter float64
	CBottomInner float64

	GapTop    float64 // both corners at the mouth of the top return
	GapBottom float64 // both corners at the mouth of the bottom return
}

// Clamping factors, relative to the stroke width.
const (
	// sameEdgeFactor limits radii which may share an edge with a second
	// rounded corner.  Keeping both below half the edge length stops the
	// two curves from touching.
	sameEdgeFactor = 0.49

	// armCornerFactor limits the C arm corners.
	armCornerFactor = 0.98
)

// ClampRadii reduces the radii requested in p to values which keep every
// outline free of self-intersections.  returnLength is the effective
// length of the C returns (see [Options.AutoReturn]).
//
// Each clamp is a plain minimum, so the results are never larger than the
// requested values.  For non-negative input, the results are non-negative.
func ClampRadii(p Params, returnLength float64) Radii {
	t := p.StrokeWidth

	var r Radii
	r.UBottomLeft = min(p.UBottomLeft, p.LetterHeight/2, p.UWidth/2)
	r.UTopLeft = min(p.UTopLeft, t*sameEdgeFactor)
	r.UInnerBend = max(0, r.UBottomLeft-t)

	maxArm := t * armCornerFactor
	r.CTopOuter = min(p.CTopRightOuter, maxArm)
	r.CTopInner = min(p.CTopRightInner, maxArm)
	r.CBottomOuter = min(p.CBottomRightOuter, maxArm)
	r.CBottomInner = min(p.CBottomRightInner, maxArm)

	r.GapTop = min(p.CGapTopRadius, t*sameEdgeFactor, returnLength*sameEdgeFactor)
	r.GapBottom = min(p.CGapBottomRadius, t*sameEdgeFactor, returnLength*sameEdgeFactor)

	return r
}
