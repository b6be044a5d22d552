package testcases

import (
	"strings"

	"seehuhn.de/go/monogram"
)

// presetCases renders every built-in preset at the editor's hero size.
func presetCases() []TestCase {
	var cases []TestCase
	for _, name := range monogram.PresetNames() {
		p, err := monogram.Preset(name)
		if err != nil {
			panic(err)
		}
		cases = append(cases, TestCase{
			Name:    strings.ReplaceAll(strings.ToLower(name), " ", "_"),
			Params:  p,
			Options: auto,
			Height:  300,
		})
	}
	return cases
}
