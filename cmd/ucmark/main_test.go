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
package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/monogram"
)

func TestPresetKeepsSplitFlag(t *testing.T) {
	on, off := true, false

	p, err := buildParams(settings{preset: "round", split: &on})
	if err != nil {
		t.Fatal(err)
	}
	if !p.SplitSpine {
		t.Error("-split lost by -preset")
	}
	if p.StrokeWidth != 30 {
		t.Errorf("preset not applied: strokeWidth %g", p.StrokeWidth)
	}

	p, err = buildParams(settings{preset: "heavy", symmetric: &off, link: &off})
	if err != nil {
		t.Fatal(err)
	}
	if p.SymmetricC || p.LinkOuterCorners {
		t.Errorf("flags lost: symmetric %t, link %t", p.SymmetricC, p.LinkOuterCorners)
	}
}

func TestFileThenPresetThenEdits(t *testing.T) {
	name := filepath.Join(t.TempDir(), "p.yaml")
	err := os.WriteFile(name, []byte("splitSpine: true\nsymmetricC: false\nlinkOuterCorners: false\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	p, err := buildParams(settings{
		paramsFile: name,
		preset:     "thin",
		edits:      []string{"cTopRightInner=5", "uWidth = 90"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.StrokeWidth != 18 {
		t.Errorf("strokeWidth %g, want 18", p.StrokeWidth)
	}
	if p.SymmetricC {
		t.Error("symmetricC from the file was lost")
	}
	if p.CTopRightInner != 5 || p.CBottomRightInner != 8 {
		t.Errorf("inner radii %g/%g, want 5/8", p.CTopRightInner, p.CBottomRightInner)
	}
	if p.UWidth != 90 {
		t.Errorf("uWidth %g, want 90", p.UWidth)
	}
}

func TestBuildParamsErrors(t *testing.T) {
	if _, err := buildParams(settings{preset: "bold"}); !errors.Is(err, monogram.ErrUnknownPreset) {
		t.Errorf("unknown preset: got %v", err)
	}
	if _, err := buildParams(settings{edits: []string{"width=3"}}); !errors.Is(err, monogram.ErrUnknownKey) {
		t.Errorf("unknown key: got %v", err)
	}
	if _, err := buildParams(settings{edits: []string{"cGap=wide"}}); err == nil {
		t.Error("malformed value accepted")
	}
	if _, err := buildParams(settings{edits: []string{"cGap=-1"}}); !errors.Is(err, monogram.ErrInvalidParams) {
		t.Errorf("negative value: got %v", err)
	}
}

func TestWriteParamsEffective(t *testing.T) {
	p, err := buildParams(settings{edits: []string{"cReturnLength=40"}})
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range []struct {
		autoReturn bool
		want       float64
	}{
		{true, 26},
		{false, 40},
	} {
		for _, format := range []monogram.Format{monogram.JSON, monogram.YAML} {
			buf := &bytes.Buffer{}
			if err := writeParams(buf, p, format, c.autoReturn); err != nil {
				t.Fatal(err)
			}
			q, err := monogram.ReadParams(buf, format)
			if err != nil {
				t.Fatal(err)
			}
			if q.CReturnLength != c.want {
				t.Errorf("%s, auto-return %t: cReturnLength %g, want %g",
					format, c.autoReturn, q.CReturnLength, c.want)
			}
		}
	}
}
