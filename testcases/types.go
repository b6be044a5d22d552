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

// Package testcases holds a catalog of monogram configurations used to
// generate and check reference renderings.
package testcases

import (
	"seehuhn.de/go/monogram"
)

// TestCase defines a single reference rendering.
type TestCase struct {
	Name    string           // lowercase a-z, 0-9 and _ only
	Params  monogram.Params  // the parameter record
	Options monogram.Options // per-call layout options
	Height  int              // raster height in pixels
}

// Mark computes the geometry of the test case.
func (tc TestCase) Mark() *monogram.Mark {
	return monogram.Compute(tc.Params, tc.Options)
}

// change is a single parameter edit.
type change struct {
	k monogram.Key
	v float64
}

// edit applies a sequence of edits through the linkage resolver.
func edit(p monogram.Params, changes ...change) monogram.Params {
	for _, c := range changes {
		p = monogram.Resolve(p, c.k, c.v)
	}
	return p
}

// auto is the option set used by the editor by default.
var auto = monogram.Options{AutoReturn: true}
