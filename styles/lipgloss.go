package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/base16"
)

// Styles contains lipgloss styles derived from a palette.
type Styles struct {
	Tokens   Tokens
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Panel    lipgloss.Style
	Border   lipgloss.Style
	Selected lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
}

// Default builds styles from the default builtin scheme.
func Default() Styles {
	return New(base16.Default().Palette)
}

// New converts a palette into lipgloss styles.
func New(p base16.Palette) Styles {
	tokens := FromPalette(p)

	return Styles{
		Tokens:   tokens,
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Heading:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Heading)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Panel:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border)),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Selection)).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Info)),
	}
}
