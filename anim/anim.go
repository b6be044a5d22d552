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

// Package anim describes entrance animations for SVG renderings of the
// mark.
//
// An animation is given by a [Mode] and a duration.  [Timing.CSS] turns
// this into a style sheet which refers to the part classes "uc-spine",
// "uc-u", "uc-ctop" and "uc-cbot", or to a group with class "uc-anim".
package anim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects an animation.
type Mode int

// Supported animations.
const (
	None     Mode = iota
	Fade          // the whole mark fades in
	Assemble      // the parts slide into place one after another
	Scale         // the mark grows from its centre
	Wipe          // the mark is revealed from left to right
)

var modeNames = []string{"none", "fade", "assemble", "scale", "wipe"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// ErrUnknownMode is returned by [ParseMode] for unsupported names.
var ErrUnknownMode = errors.New("unknown animation mode")

// ParseMode converts a mode name into a Mode.
// The empty string is accepted as an alias for "none".
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return None, nil
	}
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return None, fmt.Errorf("%q: %w", name, ErrUnknownMode)
}

// DefaultDuration is the animation length in seconds used by the editor.
const DefaultDuration = 1.2

// Timing is the animation metadata attached to one SVG rendering.
type Timing struct {
	Mode     Mode
	Duration float64 // in seconds
	ID       string  // id attribute of the svg element the CSS applies to
}

// Active reports whether t produces a style sheet.
func (t Timing) Active() bool {
	return t.Mode != None && t.ID != ""
}

// PerPart reports whether the parts are animated individually.  If this
// is false, an animated rendering wraps all parts in a group with class
// "uc-anim".
func (t Timing) PerPart() bool {
	return t.Mode == Assemble
}

// staggerFactor is the delay between consecutive parts in assemble mode,
// as a fraction of the duration.
const staggerFactor = 0.15

// Delays returns the start delay in seconds for each part class.
// Only assemble mode staggers the parts; all other modes start every part
// at time zero.
func (t Timing) Delays() map[string]float64 {
	res := map[string]float64{
		"uc-u":     0,
		"uc-spine": 0,
		"uc-ctop":  0,
		"uc-cbot":  0,
	}
	if t.Mode == Assemble {
		s := t.Duration * staggerFactor
		res["uc-spine"] = s
		res["uc-ctop"] = s * 2
		res["uc-cbot"] = s * 3
	}
	return res
}

// CSS returns the style sheet for t, or the empty string if the mode is
// None.
func (t Timing) CSS() string {
	id := t.ID
	p := "#" + id
	d := num(t.Duration)

	switch t.Mode {
	case Fade:
		return "@keyframes uc-fade-" + id + "{from{opacity:0}to{opacity:1}}" +
			p + " .uc-anim{animation:uc-fade-" + id + " " + d + "s ease-out both}"

	case Assemble:
		delays := t.Delays()
		const ease = " cubic-bezier(.22,1,.36,1) "
		return "@keyframes uc-fl-" + id + "{from{transform:translateX(-40px);opacity:0}to{transform:translateX(0);opacity:1}}" +
			"@keyframes uc-fr-" + id + "{from{transform:translateX(40px);opacity:0}to{transform:translateX(0);opacity:1}}" +
			"@keyframes uc-sg-" + id + "{from{transform:scaleY(0);opacity:0}to{transform:scaleY(1);opacity:1}}" +
			p + " .uc-u{animation:uc-fl-" + id + " " + d + "s" + ease + "both}" +
			p + " .uc-spine{transform-origin:center center;animation:uc-sg-" + id + " " + d + "s" + ease + num(delays["uc-spine"]) + "s both}" +
			p + " .uc-ctop{animation:uc-fr-" + id + " " + d + "s" + ease + num(delays["uc-ctop"]) + "s both}" +
			p + " .uc-cbot{animation:uc-fr-" + id + " " + d + "s" + ease + num(delays["uc-cbot"]) + "s both}"

	case Scale:
		return "@keyframes uc-sc-" + id + "{from{transform:scale(0);opacity:0}to{transform:scale(1);opacity:1}}" +
			p + " .uc-anim{transform-origin:50% 50%;animation:uc-sc-" + id + " " + d + "s cubic-bezier(.34,1.56,.64,1) both}"

	case Wipe:
		return "@keyframes uc-wp-" + id + "{from{clip-path:inset(0 100% 0 0)}to{clip-path:inset(0 0 0 0)}}" +
			p + " .uc-anim{animation:uc-wp-" + id + " " + d + "s cubic-bezier(.65,0,.35,1) both}"
	}
	return ""
}

func num(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
