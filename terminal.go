package base16

// TerminalScheme is a palette arranged in the Windows Terminal color-scheme
// JSON shape, the interchange format used by most terminal theme
// collections. Purple stands in for ANSI magenta, following the Windows
// Terminal key names.
type TerminalScheme struct {
	Name                string `json:"name"`
	Black               string `json:"black"`
	Red                 string `json:"red"`
	Green               string `json:"green"`
	Yellow              string `json:"yellow"`
	Blue                string `json:"blue"`
	Purple              string `json:"purple"`
	Cyan                string `json:"cyan"`
	White               string `json:"white"`
	BrightBlack         string `json:"brightBlack"`
	BrightRed           string `json:"brightRed"`
	BrightGreen         string `json:"brightGreen"`
	BrightYellow        string `json:"brightYellow"`
	BrightBlue          string `json:"brightBlue"`
	BrightPurple        string `json:"brightPurple"`
	BrightCyan          string `json:"brightCyan"`
	BrightWhite         string `json:"brightWhite"`
	Background          string `json:"background"`
	Foreground          string `json:"foreground"`
	CursorColor         string `json:"cursorColor"`
	SelectionBackground string `json:"selectionBackground"`
}

// Terminal arranges the palette in the Windows Terminal shape under the
// given name, using the conventional base16 ANSI assignment.
func (p Palette) Terminal(name string) TerminalScheme {
	ansi := p.ANSI()
	return TerminalScheme{
		Name:                name,
		Black:               ansi[0].Hex(),
		Red:                 ansi[1].Hex(),
		Green:               ansi[2].Hex(),
		Yellow:              ansi[3].Hex(),
		Blue:                ansi[4].Hex(),
		Purple:              ansi[5].Hex(),
		Cyan:                ansi[6].Hex(),
		White:               ansi[7].Hex(),
		BrightBlack:         ansi[8].Hex(),
		BrightRed:           ansi[9].Hex(),
		BrightGreen:         ansi[10].Hex(),
		BrightYellow:        ansi[11].Hex(),
		BrightBlue:          ansi[12].Hex(),
		BrightPurple:        ansi[13].Hex(),
		BrightCyan:          ansi[14].Hex(),
		BrightWhite:         ansi[15].Hex(),
		Background:          p.Background.Hex(),
		Foreground:          p.Foreground.Hex(),
		CursorColor:         p.Cursor.Hex(),
		SelectionBackground: p.Selection.Hex(),
	}
}

// Terminal exports the scheme in the Windows Terminal shape.
func (s Scheme) Terminal() TerminalScheme {
	return s.Palette.Terminal(s.Name)
}
