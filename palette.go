package base16

import "strings"

// Palette is a resolved base16 color scheme: the sixteen base slots plus the
// four UI-role slots. Palettes are values; they are never mutated after
// construction, and the With methods return modified copies.
type Palette struct {
	Base00 Color // default background
	Base01 Color // lighter background (status bars, line numbers)
	Base02 Color // selection background
	Base03 Color // comments, invisibles, line highlighting
	Base04 Color // dark foreground (status bars)
	Base05 Color // default foreground, caret, delimiters
	Base06 Color // light foreground
	Base07 Color // light background
	Base08 Color // variables, markup link text, diff deleted
	Base09 Color // integers, booleans, constants
	Base0A Color // classes, markup bold, search background
	Base0B Color // strings, markup code, diff inserted
	Base0C Color // support, regular expressions, escapes
	Base0D Color // functions, methods, headings
	Base0E Color // keywords, storage, markup italic
	Base0F Color // deprecated, embedded language tags

	Background Color
	Foreground Color
	Cursor     Color
	Selection  Color
}

// Canonical slot names in base16 order.
var slotNames = [16]string{
	"base00", "base01", "base02", "base03",
	"base04", "base05", "base06", "base07",
	"base08", "base09", "base0a", "base0b",
	"base0c", "base0d", "base0e", "base0f",
}

// SlotNames returns the sixteen canonical slot names in base16 order.
func SlotNames() []string {
	names := make([]string, len(slotNames))
	copy(names, slotNames[:])
	return names
}

// NewPalette builds a Palette from the sixteen base slots in canonical order
// and derives the UI-role slots by the fallback rule: background from base00,
// foreground from base07, cursor from base05, selection from base02.
func NewPalette(base [16]Color) Palette {
	return Palette{
		Base00: base[0], Base01: base[1], Base02: base[2], Base03: base[3],
		Base04: base[4], Base05: base[5], Base06: base[6], Base07: base[7],
		Base08: base[8], Base09: base[9], Base0A: base[10], Base0B: base[11],
		Base0C: base[12], Base0D: base[13], Base0E: base[14], Base0F: base[15],

		Background: base[0],
		Foreground: base[7],
		Cursor:     base[5],
		Selection:  base[2],
	}
}

// WithBackground returns a copy of the palette with the background replaced.
func (p Palette) WithBackground(c Color) Palette {
	p.Background = c
	return p
}

// WithForeground returns a copy of the palette with the foreground replaced.
func (p Palette) WithForeground(c Color) Palette {
	p.Foreground = c
	return p
}

// WithCursor returns a copy of the palette with the cursor color replaced.
func (p Palette) WithCursor(c Color) Palette {
	p.Cursor = c
	return p
}

// WithSelection returns a copy of the palette with the selection background
// replaced.
func (p Palette) WithSelection(c Color) Palette {
	p.Selection = c
	return p
}

// Slots returns the sixteen base slots in canonical order.
func (p Palette) Slots() [16]Color {
	return [16]Color{
		p.Base00, p.Base01, p.Base02, p.Base03,
		p.Base04, p.Base05, p.Base06, p.Base07,
		p.Base08, p.Base09, p.Base0A, p.Base0B,
		p.Base0C, p.Base0D, p.Base0E, p.Base0F,
	}
}

// Slot looks up a base slot by its canonical name ("base00" through
// "base0f", any case). The second return is false for unknown names.
func (p Palette) Slot(name string) (Color, bool) {
	name = strings.ToLower(name)
	for i, n := range slotNames {
		if n == name {
			return p.Slots()[i], true
		}
	}
	return Color{}, false
}

// ANSI returns the palette arranged as the sixteen basic terminal colors,
// using the conventional base16 assignment: the background shades map to
// black and bright black, the accents to the six hues, and the foreground
// shades to white and bright white.
func (p Palette) ANSI() [16]Color {
	return [16]Color{
		p.Base00, // black
		p.Base08, // red
		p.Base0B, // green
		p.Base0A, // yellow
		p.Base0D, // blue
		p.Base0E, // magenta
		p.Base0C, // cyan
		p.Base05, // white
		p.Base03, // bright black
		p.Base08, // bright red
		p.Base0B, // bright green
		p.Base0A, // bright yellow
		p.Base0D, // bright blue
		p.Base0E, // bright magenta
		p.Base0C, // bright cyan
		p.Base07, // bright white
	}
}

// IsDark reports whether the scheme is a dark variant, judged by the
// luminance of the default background.
func (p Palette) IsDark() bool {
	return !p.Base00.IsLight()
}
