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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/monogram/anim"
)

func svgString(t *testing.T, m *Mark, opt SVGOptions) string {
	t.Helper()
	b := &strings.Builder{}
	require.NoError(t, WriteSVG(b, m, opt))
	return b.String()
}

func TestWriteSVG(t *testing.T) {
	m := Compute(Default(), Options{AutoReturn: true})
	out := svgString(t, m, SVGOptions{})

	assert.True(t, strings.HasPrefix(out,
		`<svg viewBox="0 0 183 200" width="183" height="200" xmlns="http://www.w3.org/2000/svg">`), out)
	assert.True(t, strings.HasSuffix(out, "</svg>"))
	assert.Contains(t, out, `<rect x="71" y="6" width="26" height="188" fill="#fff"/>`)
	assert.Contains(t, out, `<path d="`+m.PathStrings()[0]+`" fill="#fff"/>`)
	assert.Equal(t, 3, strings.Count(out, "<path"))
	assert.NotContains(t, out, "<style>")
	assert.NotContains(t, out, "<g")

	// spine first
	assert.Less(t, strings.Index(out, "<rect"), strings.Index(out, "<path"))
}

func TestWriteSVGSize(t *testing.T) {
	m := Compute(Default(), Options{AutoReturn: true})
	out := svgString(t, m, SVGOptions{Size: 100, Color: "#B8986A", ID: "a&b"})

	assert.Contains(t, out, `id="a&amp;b"`)
	assert.Contains(t, out, `width="91.5" height="100"`)
	assert.Contains(t, out, `fill="#B8986A"`)
}

func TestWriteSVGAnimated(t *testing.T) {
	m := Compute(Default().WithSplitSpine(true), Options{AutoReturn: true})

	out := svgString(t, m, SVGOptions{
		ID:        "uc1",
		Animation: anim.Timing{Mode: anim.Assemble, Duration: 1.2},
	})
	assert.Contains(t, out, "<style>@keyframes uc-fl-uc1")
	assert.Equal(t, 2, strings.Count(out, `class="uc-spine"`))
	assert.Contains(t, out, `class="uc-u"`)
	assert.Contains(t, out, `class="uc-ctop"`)
	assert.Contains(t, out, `class="uc-cbot"`)
	assert.NotContains(t, out, "uc-anim")

	out = svgString(t, m, SVGOptions{
		ID:        "uc2",
		Animation: anim.Timing{Mode: anim.Fade, Duration: 1.2},
	})
	assert.Contains(t, out, "<style>@keyframes uc-fade-uc2")
	assert.Contains(t, out, `<g class="uc-anim"><rect`)
	assert.Contains(t, out, "</g></svg>")
	assert.NotContains(t, out, `class="uc-u"`)
}
