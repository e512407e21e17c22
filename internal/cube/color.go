package cube

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HexLen is the width of one encoded color token, "#rrggbb".
const HexLen = 7

// Color is the color of a single LED.
type Color struct {
	R, G, B, A uint8
}

// Null is the color of an unpainted or erased LED.
var Null = Color{R: 255, G: 255, B: 255, A: 255}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex returns the lowercase "#rrggbb" form. Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Equal compares colors the way they are stored on disk, ignoring alpha.
func (c Color) Equal(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

func (c Color) IsNull() bool {
	return c.Equal(Null)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Colorful converts to a go-colorful color for blending.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful converts back from go-colorful, clamping out-of-gamut values.
func FromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return RGB(r, g, b)
}

// FromColor converts any color.Color, flattening alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: 255}
}

// ParseHex reads a "#rrggbb" token.
func ParseHex(s string) (Color, error) {
	if len(s) != HexLen || s[0] != '#' {
		return Null, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	for i := 1; i < HexLen; i++ {
		if !isHexDigit(s[i]) {
			return Null, fmt.Errorf("invalid color %q: want #rrggbb", s)
		}
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Null, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return FromColorful(cf), nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
