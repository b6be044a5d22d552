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
	"html"
	"io"
	"strings"

	"seehuhn.de/go/monogram/anim"
)

// SVGOptions controls the appearance of an SVG rendering.
type SVGOptions struct {
	Color string  // fill colour, any CSS colour value; default "#fff"
	Size  float64 // rendered height in CSS pixels; default 200

	// ID is the id attribute of the svg element.  It is required for
	// animations, since the style sheet is scoped to it.
	ID string

	Animation anim.Timing
}

// WriteSVG writes m as a standalone SVG document.
func WriteSVG(w io.Writer, m *Mark, opt SVGOptions) error {
	color := opt.Color
	if color == "" {
		color = "#fff"
	}
	size := opt.Size
	if size <= 0 {
		size = 200
	}
	scale := size / m.Height

	timing := opt.Animation
	timing.ID = opt.ID

	b := &strings.Builder{}
	b.WriteString("<svg")
	if opt.ID != "" {
		attr(b, "id", html.EscapeString(opt.ID))
	}
	attr(b, "viewBox", "0 0 "+formatNumber(m.Width)+" "+formatNumber(m.Height))
	attr(b, "width", formatNumber(m.Width*scale))
	attr(b, "height", formatNumber(m.Height*scale))
	attr(b, "xmlns", "http://www.w3.org/2000/svg")
	b.WriteString(">")

	if timing.Active() {
		b.WriteString("<style>")
		b.WriteString(timing.CSS())
		b.WriteString("</style>")
	}

	grouped := timing.Mode != anim.None && !timing.PerPart()
	if grouped {
		b.WriteString(`<g class="uc-anim">`)
	}

	fill := html.EscapeString(color)
	classFor := func(p Part) string {
		if timing.PerPart() {
			return p.Class()
		}
		return ""
	}
	for _, r := range m.Spine {
		b.WriteString("<rect")
		if c := classFor(PartSpine); c != "" {
			attr(b, "class", c)
		}
		attr(b, "x", formatNumber(r.LLx))
		attr(b, "y", formatNumber(r.LLy))
		attr(b, "width", formatNumber(r.URx-r.LLx))
		attr(b, "height", formatNumber(r.URy-r.LLy))
		attr(b, "fill", fill)
		b.WriteString("/>")
	}
	for _, s := range m.Shapes() {
		if s.Part == PartSpine {
			continue
		}
		b.WriteString("<path")
		if c := classFor(s.Part); c != "" {
			attr(b, "class", c)
		}
		attr(b, "d", FormatPath(s.Path))
		attr(b, "fill", fill)
		b.WriteString("/>")
	}

	if grouped {
		b.WriteString("</g>")
	}
	b.WriteString("</svg>")

	_, err := io.WriteString(w, b.String())
	return err
}

func attr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteByte('"')
}
