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
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned by [ApplyPreset] for unknown preset names.
var ErrUnknownPreset = errors.New("unknown preset")

// preset is a named set of overrides on top of [Default].
type preset struct {
	name  string
	apply func(p *Params)
}

var presets = []preset{
	{"Sharp", func(p *Params) {
		p.UBottomLeft = 0
		p.CTopRightOuter, p.CTopRightInner = 0, 0
		p.CBottomRightOuter, p.CBottomRightInner = 0, 0
		p.UTopLeft = 0
	}},
	{"Original", func(p *Params) {}},
	{"Soft", func(p *Params) {
		p.UBottomLeft, p.UTopLeft = 42, 4
		p.CTopRightOuter, p.CTopRightInner = 14, 10
		p.CBottomRightOuter, p.CBottomRightInner = 14, 10
	}},
	{"Round", func(p *Params) {
		p.StrokeWidth = 30
		p.UBottomLeft, p.UTopLeft = 60, 10
		p.CTopRightOuter, p.CTopRightInner = 24, 18
		p.CBottomRightOuter, p.CBottomRightInner = 24, 18
		p.CReturnLength, p.CGap = 34, 80
	}},
	{"Thin", func(p *Params) {
		p.StrokeWidth = 18
		p.UBottomLeft, p.UTopLeft = 32, 6
		p.CTopRightOuter, p.CTopRightInner = 12, 8
		p.CBottomRightOuter, p.CBottomRightInner = 12, 8
		p.CReturnLength = 22
	}},
	{"Heavy", func(p *Params) {
		p.StrokeWidth = 38
		p.UBottomLeft = 50
		p.CTopRightOuter, p.CBottomRightOuter = 0, 0
		p.CReturnLength, p.CGap = 34, 70
	}},
	{"Wide C", func(p *Params) {
		p.CWidth, p.CGap, p.CReturnLength = 140, 80, 32
	}},
	{"Narrow", func(p *Params) {
		p.UWidth, p.CWidth = 80, 96
		p.StrokeWidth = 22
		p.UBottomLeft = 34
	}},
	{"Tall", func(p *Params) {
		p.UBottomLeft = 50
		p.StrokeWidth = 24
	}},
}

// PresetNames returns the names of the built-in presets in display order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}

// Preset returns the parameter record of the named preset.
// Names are matched ignoring case, spaces and hyphens.
func Preset(name string) (Params, error) {
	key := presetKey(name)
	for _, ps := range presets {
		if presetKey(ps.name) == key {
			p := Default()
			ps.apply(&p)
			return p, nil
		}
	}
	return Params{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
}

// ApplyPreset replaces current by the named preset, keeping the mirror
// and link flags of current.  On error, current is returned unchanged.
func ApplyPreset(current Params, name string) (Params, error) {
	p, err := Preset(name)
	if err != nil {
		return current, err
	}
	p.SymmetricC = current.SymmetricC
	p.LinkOuterCorners = current.LinkOuterCorners
	Logger().Debug("preset applied", "name", name)
	return p, nil
}

func presetKey(name string) string {
	name = strings.ToLower(name)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name)
}
