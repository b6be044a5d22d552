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
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FormatPath converts p into SVG path data.
//
// Only the commands produced by this package are supported: "M x y",
// "L x y", "Q cx cy x y" and "Z".  Tokens are separated by single spaces
// and numbers use the shortest decimal representation which reads back
// to the same float64.  FormatPath panics if p contains a cubic segment.
func FormatPath(p *path.Data) string {
	var b strings.Builder
	i := 0
	for _, cmd := range p.Cmds {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			b.WriteString("M ")
			writePoint(&b, p.Coords[i])
			i++
		case path.CmdLineTo:
			b.WriteString("L ")
			writePoint(&b, p.Coords[i])
			i++
		case path.CmdQuadTo:
			b.WriteString("Q ")
			writePoint(&b, p.Coords[i])
			b.WriteByte(' ')
			writePoint(&b, p.Coords[i+1])
			i += 2
		case path.CmdClose:
			b.WriteString("Z")
		default:
			panic(fmt.Sprintf("unsupported path command %v", cmd))
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, v vec.Vec2) {
	b.WriteString(formatNumber(v.X))
	b.WriteByte(' ')
	b.WriteString(formatNumber(v.Y))
}

// formatNumber formats x in shortest round-trip form.  Magnitudes below
// 1e-6 or from 1e21 upwards use an exponent, written as "1e-7" or
// "1e+21".
func formatNumber(x float64) string {
	if x == 0 {
		return "0" // also catches negative zero
	}
	if a := math.Abs(x); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
