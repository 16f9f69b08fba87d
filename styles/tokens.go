// Package styles derives lipgloss styles from base16 palettes.
package styles

import "github.com/opencode-ai/base16"

// Tokens defines the semantic color roles for a terminal UI, picked from a
// base16 palette by the conventional slot assignments.
type Tokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Heading    string
	Success    string
	Warning    string
	Error      string
	Info       string
	Selection  string
}

// FromPalette assigns palette slots to semantic roles.
func FromPalette(p base16.Palette) Tokens {
	return Tokens{
		Background: p.Background.Hex(),
		Panel:      p.Base01.Hex(),
		Text:       p.Base05.Hex(),
		TextMuted:  p.Base03.Hex(),
		Border:     p.Base02.Hex(),
		Accent:     p.Base0E.Hex(),
		Heading:    p.Base0D.Hex(),
		Success:    p.Base0B.Hex(),
		Warning:    p.Base0A.Hex(),
		Error:      p.Base08.Hex(),
		Info:       p.Base0D.Hex(),
		Selection:  p.Selection.Hex(),
	}
}
