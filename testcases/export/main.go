// Command export writes the test case geometry to JSON, for checking the
// paths against other renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/monogram"
	"seehuhn.de/go/monogram/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string          `json:"name"`
	Height     int             `json:"height"`
	AutoReturn bool            `json:"auto_return"`
	Params     monogram.Params `json:"params"`
	ViewBox    [4]float64      `json:"view_box"`
	Spine      [][4]float64    `json:"spine"`
	U          string          `json:"u"`
	CTop       string          `json:"c_top"`
	CBottom    string          `json:"c_bottom"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	m := tc.Mark()
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Height:     tc.Height,
		AutoReturn: tc.Options.AutoReturn,
		Params:     tc.Params,
		ViewBox:    [4]float64{0, 0, m.Width, m.Height},
		U:          monogram.FormatPath(m.U),
		CTop:       monogram.FormatPath(m.CTop),
		CBottom:    monogram.FormatPath(m.CBottom),
	}
	for _, r := range m.Spine {
		jtc.Spine = append(jtc.Spine, [4]float64{r.LLx, r.LLy, r.URx - r.LLx, r.URy - r.LLy})
	}
	return jtc
}
