package base16

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit sRGB color. The zero value is black.
type Color struct {
	R, G, B uint8
}

// ParseColor parses a hex color of the form "#rrggbb" or "rrggbb". Digit
// case does not matter. Malformed input returns a *SchemaError.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, &SchemaError{Value: s, Reason: "hex color must have exactly 6 digits"}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, &SchemaError{Value: s, Reason: "invalid hex digit in color"}
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex renders the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// RGBA implements image/color.Color. Channels are widened to 16 bits the
// same way color.RGBA widens them, with full opacity.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// MarshalText implements encoding.TextMarshaler using the Hex form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Luminance reports the perceptual lightness of the color on a 0 to 1
// scale, taken from the L channel of the CIE Lab representation.
func (c Color) Luminance() float64 {
	l, _, _ := c.colorful().Lab()
	return l
}

// IsLight reports whether the color reads as a light background, meaning
// dark text would be legible on top of it.
func (c Color) IsLight() bool {
	return c.Luminance() > 0.5
}

// Blend mixes c toward other in RGB space. t is clamped to [0, 1]; 0
// returns c unchanged and 1 returns other.
func (c Color) Blend(other Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	m := c.colorful().BlendRgb(other.colorful(), t)
	return Color{
		R: uint8(m.R*255 + 0.5),
		G: uint8(m.G*255 + 0.5),
		B: uint8(m.B*255 + 0.5),
	}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
