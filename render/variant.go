package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Variant is a foreground/background colour pair.
type Variant struct {
	Background color.NRGBA
	Foreground color.NRGBA
}

// DefaultVariant is the index into [Variants] used when none is chosen:
// black on white.
const DefaultVariant = 1

var variantHex = [][2]string{
	{"#000", "#FFF"},
	{"#FFF", "#000"},
	{"#1A1A1A", "#B8986A"},
	{"#B8986A", "#FFF"},
	{"#0A1628", "#FFF"},
	{"#F5F2ED", "#2C2C2C"},
}

// Variants returns the built-in colour contexts of the mark.
func Variants() []Variant {
	res := make([]Variant, len(variantHex))
	for i, h := range variantHex {
		res[i] = Variant{
			Background: mustParseHex(h[0]),
			Foreground: mustParseHex(h[1]),
		}
	}
	return res
}

// ForegroundHex returns the foreground colour as "#rrggbb".
func (v Variant) ForegroundHex() string {
	return toHex(v.Foreground)
}

// BackgroundHex returns the background colour as "#rrggbb".
func (v Variant) BackgroundHex() string {
	return toHex(v.Background)
}

func toHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var errBadColor = errors.New("malformed colour")

// ParseHex parses a CSS hex colour of the form "#rgb", "#rgba", "#rrggbb"
// or "#rrggbbaa".
func ParseHex(s string) (color.NRGBA, error) {
	h, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, errBadColor)
	}
	if len(h) == 3 || len(h) == 4 {
		var b strings.Builder
		for _, c := range h {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		h = b.String()
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, errBadColor)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, errBadColor)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func mustParseHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
