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

// mirrorPairs lists the radii which are kept equal when SymmetricC is set.
var mirrorPairs = [][2]Key{
	{KeyCTopRightOuter, KeyCBottomRightOuter},
	{KeyCTopRightInner, KeyCBottomRightInner},
	{KeyCGapTopRadius, KeyCGapBottomRadius},
}

// Resolve returns a copy of current with the field k set to v, and with
// the change propagated to the fields linked to k.
//
// Propagation happens in two steps.  First, if SymmetricC is set, the
// mirror partner of k (if any) receives v.  Then, if LinkOuterCorners is
// set, the link rules are applied to the result of the first step:
// editing either C outer radius sets U top-left and both C outer radii,
// editing U top-left sets both C outer radii.  Assignments of the second
// step override those of the first.
//
// If k is not a known key, current is returned unchanged.
func Resolve(current Params, k Key, v float64) Params {
	next := current
	ptr := next.field(k)
	if ptr == nil {
		return current
	}
	*ptr = v

	if current.SymmetricC {
		for _, pair := range mirrorPairs {
			switch k {
			case pair[0]:
				*next.field(pair[1]) = v
			case pair[1]:
				*next.field(pair[0]) = v
			}
		}
	}

	if current.LinkOuterCorners {
		switch k {
		case KeyCTopRightOuter, KeyCBottomRightOuter:
			next.UTopLeft = v
			next.CTopRightOuter = v
			next.CBottomRightOuter = v
		case KeyUTopLeft:
			next.CTopRightOuter = v
			next.CBottomRightOuter = v
		}
	}

	return next
}

// WithSymmetricC returns a copy of p with the mirror flag set to on.
// Existing radii are not changed.
func (p Params) WithSymmetricC(on bool) Params {
	p.SymmetricC = on
	return p
}

// WithLinkOuterCorners returns a copy of p with the link flag set to on.
// Switching the link on copies the C top-right outer radius into the U
// top-left radius, so that the linked corners agree immediately.
func (p Params) WithLinkOuterCorners(on bool) Params {
	p.LinkOuterCorners = on
	if on {
		p.UTopLeft = p.CTopRightOuter
	}
	return p
}

// WithSplitSpine returns a copy of p with the split-spine flag set to on.
func (p Params) WithSplitSpine(on bool) Params {
	p.SplitSpine = on
	return p
}
