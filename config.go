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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a parameter file.
type Format int

// Supported parameter file formats.
const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromName guesses the format of a file from its extension.
// Files ending in ".yaml" or ".yml" are YAML, everything else is JSON.
func FormatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// ReadParams decodes a parameter record.  Fields missing from the input
// keep their values from [Default].  The result is validated.
func ReadParams(r io.Reader, format Format) (Params, error) {
	p := Default()

	var err error
	switch format {
	case JSON:
		err = json.NewDecoder(r).Decode(&p)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&p)
		if errors.Is(err, io.EOF) {
			err = nil // empty document
		}
	default:
		return Params{}, fmt.Errorf("unsupported format %s", format)
	}
	if err != nil {
		return Params{}, fmt.Errorf("decoding %s parameters: %w", format, err)
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	Logger().Debug("parameters decoded", "format", format.String())
	return p, nil
}

// ReadParamsFile reads a parameter record from the named file.
func ReadParamsFile(name string) (Params, error) {
	fd, err := os.Open(name)
	if err != nil {
		return Params{}, err
	}
	defer fd.Close()

	p, err := ReadParams(fd, FormatFromName(name))
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// WriteParams encodes p in the given format.
func WriteParams(w io.Writer, p Params, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %s", format)
}
