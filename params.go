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
	"math"
)

// Params is the flat parameter record describing one monogram.
// All lengths are in the same abstract units as the output coordinates.
// Params is a value type: edits produce a new record (see [Resolve]).
type Params struct {
	// Dimensions.
	StrokeWidth    float64 `json:"strokeWidth" yaml:"strokeWidth"`
	TotalWidth     float64 `json:"totalWidth" yaml:"totalWidth"`   // carried for compatibility, not used by the layout
	TotalHeight    float64 `json:"totalHeight" yaml:"totalHeight"` // height of the output box
	LetterHeight   float64 `json:"letterHeight" yaml:"letterHeight"`
	UWidth         float64 `json:"uWidth" yaml:"uWidth"`
	CWidth         float64 `json:"cWidth" yaml:"cWidth"`
	SpineThickness float64 `json:"spineThickness" yaml:"spineThickness"`
	UCSpacing      float64 `json:"ucSpacing" yaml:"ucSpacing"`
	CReturnLength  float64 `json:"cReturnLength" yaml:"cReturnLength"`
	CGap           float64 `json:"cGap" yaml:"cGap"` // vertical opening between the C returns

	// Corner radii, before clamping.
	UBottomLeft       float64 `json:"uBottomLeft" yaml:"uBottomLeft"`
	UTopLeft          float64 `json:"uTopLeft" yaml:"uTopLeft"`
	CTopRightOuter    float64 `json:"cTopRightOuter" yaml:"cTopRightOuter"`
	CTopRightInner    float64 `json:"cTopRightInner" yaml:"cTopRightInner"`
	CBottomRightOuter float64 `json:"cBottomRightOuter" yaml:"cBottomRightOuter"`
	CBottomRightInner float64 `json:"cBottomRightInner" yaml:"cBottomRightInner"`
	CGapTopRadius     float64 `json:"cGapTopRadius" yaml:"cGapTopRadius"`
	CGapBottomRadius  float64 `json:"cGapBottomRadius" yaml:"cGapBottomRadius"`

	// SymmetricC mirrors edits of the top and bottom C radii.
	SymmetricC bool `json:"symmetricC" yaml:"symmetricC"`

	// LinkOuterCorners ties the U top-left radius to both C outer radii.
	LinkOuterCorners bool `json:"linkOuterCorners" yaml:"linkOuterCorners"`

	// SplitSpine draws the spine as two half-width pieces.
	SplitSpine bool `json:"splitSpine" yaml:"splitSpine"`
}

// Default returns the parameter record of the standard mark.
func Default() Params {
	return Params{
		StrokeWidth:    26,
		TotalWidth:     240,
		TotalHeight:    200,
		LetterHeight:   188,
		UWidth:         97,
		CWidth:         72,
		SpineThickness: 26,
		UCSpacing:      14,
		CReturnLength:  26,
		CGap:           73,

		UBottomLeft:       50,
		UTopLeft:          2,
		CTopRightOuter:    2,
		CTopRightInner:    2,
		CBottomRightOuter: 2,
		CBottomRightInner: 2,
		CGapTopRadius:     2,
		CGapBottomRadius:  2,

		SymmetricC:       true,
		LinkOuterCorners: true,
		SplitSpine:       false,
	}
}

// Key names one numeric field of [Params].
// The values coincide with the field names used in parameter files.
type Key string

// Numeric fields of the parameter record.
const (
	KeyStrokeWidth    Key = "strokeWidth"
	KeyTotalWidth     Key = "totalWidth"
	KeyTotalHeight    Key = "totalHeight"
	KeyLetterHeight   Key = "letterHeight"
	KeyUWidth         Key = "uWidth"
	KeyCWidth         Key = "cWidth"
	KeySpineThickness Key = "spineThickness"
	KeyUCSpacing      Key = "ucSpacing"
	KeyCReturnLength  Key = "cReturnLength"
	KeyCGap           Key = "cGap"

	KeyUBottomLeft       Key = "uBottomLeft"
	KeyUTopLeft          Key = "uTopLeft"
	KeyCTopRightOuter    Key = "cTopRightOuter"
	KeyCTopRightInner    Key = "cTopRightInner"
	KeyCBottomRightOuter Key = "cBottomRightOuter"
	KeyCBottomRightInner Key = "cBottomRightInner"
	KeyCGapTopRadius     Key = "cGapTopRadius"
	KeyCGapBottomRadius  Key = "cGapBottomRadius"
)

var allKeys = []Key{
	KeyStrokeWidth, KeyTotalWidth, KeyTotalHeight, KeyLetterHeight,
	KeyUWidth, KeyCWidth, KeySpineThickness, KeyUCSpacing,
	KeyCReturnLength, KeyCGap,
	KeyUBottomLeft, KeyUTopLeft,
	KeyCTopRightOuter, KeyCTopRightInner,
	KeyCBottomRightOuter, KeyCBottomRightInner,
	KeyCGapTopRadius, KeyCGapBottomRadius,
}

// Keys returns all numeric keys in declaration order.
func Keys() []Key {
	return append([]Key(nil), allKeys...)
}

var (
	// ErrUnknownKey is returned by [ParseKey] for names which do not
	// correspond to a numeric parameter.
	ErrUnknownKey = errors.New("unknown parameter")

	// ErrInvalidParams is returned by [Params.Validate].
	ErrInvalidParams = errors.New("invalid parameters")
)

// ParseKey converts a field name into a Key.
func ParseKey(name string) (Key, error) {
	k := Key(name)
	var p Params
	if p.field(k) == nil {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownKey)
	}
	return k, nil
}

// Get returns the value of the numeric field k.
// The second return value is false if k is not a known key.
func (p Params) Get(k Key) (float64, bool) {
	ptr := p.field(k)
	if ptr == nil {
		return 0, false
	}
	return *ptr, true
}

// field returns a pointer to the field named by k, or nil.
func (p *Params) field(k Key) *float64 {
	switch k {
	case KeyStrokeWidth:
		return &p.StrokeWidth
	case KeyTotalWidth:
		return &p.TotalWidth
	case KeyTotalHeight:
		return &p.TotalHeight
	case KeyLetterHeight:
		return &p.LetterHeight
	case KeyUWidth:
		return &p.UWidth
	case KeyCWidth:
		return &p.CWidth
	case KeySpineThickness:
		return &p.SpineThickness
	case KeyUCSpacing:
		return &p.UCSpacing
	case KeyCReturnLength:
		return &p.CReturnLength
	case KeyCGap:
		return &p.CGap
	case KeyUBottomLeft:
		return &p.UBottomLeft
	case KeyUTopLeft:
		return &p.UTopLeft
	case KeyCTopRightOuter:
		return &p.CTopRightOuter
	case KeyCTopRightInner:
		return &p.CTopRightInner
	case KeyCBottomRightOuter:
		return &p.CBottomRightOuter
	case KeyCBottomRightInner:
		return &p.CBottomRightInner
	case KeyCGapTopRadius:
		return &p.CGapTopRadius
	case KeyCGapBottomRadius:
		return &p.CGapBottomRadius
	}
	return nil
}

// Effective returns the record as seen by the layout.  If autoReturn is
// set, the return length is replaced by the stroke width.
func (p Params) Effective(autoReturn bool) Params {
	if autoReturn {
		p.CReturnLength = p.StrokeWidth
	}
	return p
}

// Validate checks that all numeric fields are finite and non-negative.
// The geometry functions do not call Validate; out-of-range input there
// is the caller's responsibility.
func (p Params) Validate() error {
	for _, k := range allKeys {
		v, _ := p.Get(k)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s = %g: %w", k, v, ErrInvalidParams)
		}
	}
	return nil
}
