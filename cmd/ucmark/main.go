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

// Command ucmark renders the UC monogram.
//
// The parameters start from the defaults, or from a JSON or YAML file
// given with -params.  A preset may replace them, and -set edits single
// values through the same linkage rules as the interactive editor:
//
//	ucmark -preset round -set cTopRightOuter=20 -format svg -o mark.svg
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/monogram"
	"seehuhn.de/go/monogram/anim"
	"seehuhn.de/go/monogram/render"
)

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// edits collects repeated -set flags.
type edits []string

func (e *edits) String() string { return strings.Join(*e, ",") }

func (e *edits) Set(s string) error {
	if !strings.Contains(s, "=") {
		return errors.New("expected key=value")
	}
	*e = append(*e, s)
	return nil
}

var (
	presetName   = flag.String("preset", "", "start from the named preset")
	paramsFile   = flag.String("params", "", "read parameters from a JSON or YAML file")
	symmetric    = flag.Bool("symmetric", true, "mirror edits of the C radii")
	link         = flag.Bool("link", true, "link the outer corner radii")
	split        = flag.Bool("split", false, "split the spine into two halves")
	autoReturn   = flag.Bool("auto-return", true, "make the C returns as long as the stroke is wide")
	format       = flag.String("format", "svg", "output format: svg, png, pdf, json, yaml, paths or sheet")
	size         = flag.Float64("size", 200, "output height in pixels")
	variant      = flag.Int("variant", render.DefaultVariant, "colour variant")
	animMode     = flag.String("anim", "", "SVG animation: fade, assemble, scale or wipe")
	animDuration = flag.Float64("anim-duration", anim.DefaultDuration, "animation duration in seconds")
	svgID        = flag.String("id", "", "id of the svg element")
	destination  = flag.String("o", pipeName, "output file")
	verbose      = flag.Bool("v", false, "log progress to stderr")

	setFlags edits
)

func main() {
	log.SetFlags(0)
	flag.Var(&setFlags, "set", "set a parameter, as key=value (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: ucmark [flags]\n\nflags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\npresets: %s\n", strings.Join(monogram.PresetNames(), ", "))
		fmt.Fprintf(os.Stderr, "keys: %s\n", keyList())
	}
	flag.Parse()

	if *verbose {
		monogram.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	p, err := buildParams(settingsFromFlags())
	if err != nil {
		log.Fatalf("ucmark: %v", err)
	}
	m := monogram.Compute(p, monogram.Options{AutoReturn: *autoReturn})

	if err := emit(p, m); err != nil {
		log.Fatalf("ucmark: %v", err)
	}
}

// settings are the command line inputs which determine the parameter
// record.  A nil flag was not given on the command line.
type settings struct {
	paramsFile string
	preset     string
	symmetric  *bool
	link       *bool
	split      *bool
	edits      []string
}

func settingsFromFlags() settings {
	s := settings{
		paramsFile: *paramsFile,
		preset:     *presetName,
		edits:      setFlags,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "symmetric":
			s.symmetric = symmetric
		case "link":
			s.link = link
		case "split":
			s.split = split
		}
	})
	return s
}

// buildParams assembles the parameter record.  The file is read first,
// then the preset replaces it, then explicit flags and finally the
// single-value edits are applied.
func buildParams(s settings) (monogram.Params, error) {
	p := monogram.Default()
	if s.paramsFile != "" {
		var err error
		p, err = monogram.ReadParamsFile(s.paramsFile)
		if err != nil {
			return p, err
		}
	}

	if s.preset != "" {
		var err error
		p, err = monogram.ApplyPreset(p, s.preset)
		if err != nil {
			return p, err
		}
	}

	if s.symmetric != nil {
		p = p.WithSymmetricC(*s.symmetric)
	}
	if s.link != nil {
		p = p.WithLinkOuterCorners(*s.link)
	}
	if s.split != nil {
		p = p.WithSplitSpine(*s.split)
	}

	for _, e := range s.edits {
		name, value, _ := strings.Cut(e, "=")
		k, err := monogram.ParseKey(strings.TrimSpace(name))
		if err != nil {
			return p, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return p, fmt.Errorf("-set %s: %w", e, err)
		}
		p = monogram.Resolve(p, k, v)
	}

	return p, p.Validate()
}

// writeParams writes the record as the layout sees it.
func writeParams(w io.Writer, p monogram.Params, format monogram.Format, autoReturn bool) error {
	return monogram.WriteParams(w, p.Effective(autoReturn), format)
}

func emit(p monogram.Params, m *monogram.Mark) error {
	variants := render.Variants()
	if *variant < 0 || *variant >= len(variants) {
		return fmt.Errorf("variant %d out of range 0-%d", *variant, len(variants)-1)
	}
	v := variants[*variant]
	height := int(math.Round(*size))
	mode, err := anim.ParseMode(*animMode)
	if err != nil {
		return err
	}

	switch *format {
	case "pdf":
		if *destination == pipeName {
			return errors.New("PDF output needs a file name, use -o")
		}
		return render.WritePDF(*destination, m, v)
	case "svg", "png", "json", "yaml", "paths", "sheet":
		// handled below
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	binary := *format == "png" || *format == "sheet"
	w, err := openOutput(*destination, binary)
	if err != nil {
		return err
	}

	switch *format {
	case "svg":
		if mode != anim.None && *svgID == "" {
			*svgID = "uc-mark"
		}
		err = monogram.WriteSVG(w, m, monogram.SVGOptions{
			Color: v.ForegroundHex(),
			Size:  *size,
			ID:    *svgID,
			Animation: anim.Timing{
				Mode:     mode,
				Duration: *animDuration,
			},
		})
		if err == nil {
			_, err = io.WriteString(w, "\n")
		}
	case "png":
		err = render.EncodePNG(w, render.Image(m, render.Options{Height: height, Variant: v}))
	case "sheet":
		err = render.EncodePNG(w, render.ContactSheet(m, v, nil))
	case "json":
		err = writeParams(w, p, monogram.JSON, *autoReturn)
	case "yaml":
		err = writeParams(w, p, monogram.YAML, *autoReturn)
	case "paths":
		for _, r := range m.Spine {
			fmt.Fprintf(w, "rect %g %g %g %g\n", r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
		}
		for _, s := range m.PathStrings() {
			fmt.Fprintln(w, s)
		}
	}

	if c, ok := w.(io.Closer); ok && w != os.Stdout {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	if err == nil {
		monogram.Logger().Info("mark written",
			"format", *format, "output", *destination)
	}
	return err
}

// openOutput returns the writer for out.  Binary data is never written
// to a terminal.
func openOutput(out string, binary bool) (io.Writer, error) {
	if out == pipeName {
		if binary && term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("refusing to write binary output to a terminal, use -o")
		}
		return os.Stdout, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return f, nil
}

func keyList() string {
	keys := monogram.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
