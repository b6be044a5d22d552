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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampDefault(t *testing.T) {
	r := ClampRadii(Default(), 26)

	assert.Equal(t, 48.5, r.UBottomLeft)
	assert.Equal(t, 2.0, r.UTopLeft)
	assert.Equal(t, 22.5, r.UInnerBend)
	assert.Equal(t, 2.0, r.CTopOuter)
	assert.Equal(t, 2.0, r.GapTop)
	assert.Equal(t, 2.0, r.GapBottom)
}

func TestClampBounds(t *testing.T) {
	for _, stroke := range []float64{0, 4, 18, 26, 38, 80} {
		for _, ret := range []float64{0, 6, 26, 60} {
			for _, radius := range []float64{0, 1, 10, 30, 100, 1000} {
				p := Default()
				p.StrokeWidth = stroke
				for _, k := range []Key{
					KeyUBottomLeft, KeyUTopLeft,
					KeyCTopRightOuter, KeyCTopRightInner,
					KeyCBottomRightOuter, KeyCBottomRightInner,
					KeyCGapTopRadius, KeyCGapBottomRadius,
				} {
					*p.field(k) = radius
				}
				r := ClampRadii(p, ret)

				all := []float64{
					r.UBottomLeft, r.UTopLeft, r.UInnerBend,
					r.CTopOuter, r.CTopInner, r.CBottomOuter, r.CBottomInner,
					r.GapTop, r.GapBottom,
				}
				for _, v := range all {
					assert.GreaterOrEqual(t, v, 0.0)
					assert.LessOrEqual(t, v, radius)
				}

				assert.LessOrEqual(t, r.UBottomLeft, p.LetterHeight/2)
				assert.LessOrEqual(t, r.UBottomLeft, p.UWidth/2)
				assert.LessOrEqual(t, r.UTopLeft, stroke*0.49)
				assert.LessOrEqual(t, r.UInnerBend, max(0, r.UBottomLeft-stroke))
				for _, v := range []float64{r.CTopOuter, r.CTopInner, r.CBottomOuter, r.CBottomInner} {
					assert.LessOrEqual(t, v, stroke*0.98)
				}
				for _, v := range []float64{r.GapTop, r.GapBottom} {
					assert.LessOrEqual(t, v, stroke*0.49)
					assert.LessOrEqual(t, v, ret*0.49)
				}
			}
		}
	}
}
