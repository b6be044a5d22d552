package testcases

import "seehuhn.de/go/monogram"

var spineCases = []TestCase{
	{
		Name:    "shared",
		Params:  monogram.Default(),
		Options: auto,
		Height:  200,
	},
	{
		Name:    "split",
		Params:  monogram.Default().WithSplitSpine(true),
		Options: auto,
		Height:  200,
	},
	{
		Name: "split_wide_spacing",
		Params: edit(monogram.Default().WithSplitSpine(true),
			change{monogram.KeyUCSpacing, 40}),
		Options: auto,
		Height:  200,
	},
	{
		Name: "thin_spine",
		Params: edit(monogram.Default(),
			change{monogram.KeySpineThickness, 8},
			change{monogram.KeyUCSpacing, 0}),
		Options: auto,
		Height:  200,
	},
	{
		Name: "touching",
		Params: edit(monogram.Default(),
			change{monogram.KeyUCSpacing, 0}),
		Options: auto,
		Height:  64,
	},
}
