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

package testcases

import "seehuhn.de/go/monogram"

var clampCases = []TestCase{
	{
		// every radius far above its bound
		Name: "oversized_radii",
		Params: edit(monogram.Default(),
			change{monogram.KeyUBottomLeft, 500},
			change{monogram.KeyCTopRightOuter, 500},
			change{monogram.KeyCTopRightInner, 500},
			change{monogram.KeyCGapTopRadius, 500}),
		Options: auto,
		Height:  200,
	},
	{
		Name: "sharp",
		Params: edit(monogram.Default(),
			change{monogram.KeyUBottomLeft, 0},
			change{monogram.KeyCTopRightOuter, 0},
			change{monogram.KeyCTopRightInner, 0},
			change{monogram.KeyCGapTopRadius, 0}),
		Options: auto,
		Height:  200,
	},
	{
		// a short manual return limits the gap radii
		Name: "short_return",
		Params: edit(monogram.Default(),
			change{monogram.KeyCReturnLength, 6},
			change{monogram.KeyCGapTopRadius, 12}),
		Options: monogram.Options{AutoReturn: false},
		Height:  200,
	},
	{
		// the top and bottom arms differ once mirroring is off
		Name: "asymmetric",
		Params: edit(monogram.Default().WithSymmetricC(false).WithLinkOuterCorners(false),
			change{monogram.KeyCTopRightOuter, 20},
			change{monogram.KeyCBottomRightInner, 16},
			change{monogram.KeyCGapBottomRadius, 10}),
		Options: auto,
		Height:  200,
	},
	{
		Name:    "small",
		Params:  monogram.Default(),
		Options: auto,
		Height:  14,
	},
}
