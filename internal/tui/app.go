// Package tui implements the interactive scheme browser.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/base16"
	"github.com/opencode-ai/base16/styles"
)

// Run launches the scheme browser and returns the name of the chosen
// scheme. The name is empty when the user quits without choosing.
func Run(schemes []base16.Scheme) (string, error) {
	if len(schemes) == 0 {
		return "", fmt.Errorf("no schemes to browse")
	}
	program := tea.NewProgram(initialModel(schemes), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(model)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	return m.choice, nil
}

type model struct {
	schemes []base16.Scheme
	cursor  int
	choice  string
	width   int
	height  int
	styles  styles.Styles
}

const (
	minWidth  = 52
	minHeight = 16
	listWidth = 26
)

func initialModel(schemes []base16.Scheme) model {
	m := model{schemes: schemes}
	m.styles = styles.New(m.selected().Palette)
	return m
}

func (m model) selected() base16.Scheme {
	return m.schemes[m.cursor]
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m = m.moveCursor(m.cursor - 1)
		case "down", "j":
			m = m.moveCursor(m.cursor + 1)
		case "home", "g":
			m = m.moveCursor(0)
		case "end", "G":
			m = m.moveCursor(len(m.schemes) - 1)
		case "enter":
			m.choice = m.selected().Name
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// moveCursor clamps the cursor to the scheme list and restyles the UI with
// the newly selected palette.
func (m model) moveCursor(to int) model {
	if to < 0 {
		to = 0
	}
	if to > len(m.schemes)-1 {
		to = len(m.schemes) - 1
	}
	if to == m.cursor {
		return m
	}
	m.cursor = to
	m.styles = styles.New(m.selected().Palette)
	return m
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), "  ", m.previewView())

	lines := []string{
		m.styles.Title.Render("base16 schemes"),
		"",
		body,
		"",
		m.styles.Muted.Render("Shortcuts: enter select | j/k move | g/G first/last | q quit"),
	}

	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

// listView renders the scheme list, windowed so the cursor stays visible.
func (m model) listView() string {
	visible := m.listHeight()
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.schemes) {
		end = len(m.schemes)
	}

	var lines []string
	for i := start; i < end; i++ {
		name := truncate(m.schemes[i].Name, listWidth-2)
		if i == m.cursor {
			lines = append(lines, m.styles.Selected.Render("> "+pad(name, listWidth-2)))
			continue
		}
		lines = append(lines, m.styles.Text.Render("  "+name))
	}
	return joinLines(lines)
}

func (m model) listHeight() int {
	// Title, two blank separators and the shortcut line surround the body.
	height := m.height - 5
	if height < 1 {
		height = len(m.schemes)
	}
	if height > len(m.schemes) {
		height = len(m.schemes)
	}
	return height
}

func (m model) previewView() string {
	scheme := m.selected()
	palette := scheme.Palette

	title := scheme.Name
	if scheme.Variant != "" {
		title = fmt.Sprintf("%s  (%s)", scheme.Name, scheme.Variant)
	}

	lines := []string{
		m.styles.Heading.Render(title),
	}
	if scheme.Author != "" {
		lines = append(lines, m.styles.Muted.Render("by "+scheme.Author))
	}

	slots := palette.Slots()
	lines = append(lines,
		"",
		swatchStrip(slots[:8])+"  "+m.styles.Muted.Render("base00..base07"),
		swatchStrip(slots[8:])+"  "+m.styles.Muted.Render("base08..base0f"),
		"",
		m.styles.Muted.Render(fmt.Sprintf("bg %s  fg %s", palette.Background.Hex(), palette.Foreground.Hex())),
		"",
		m.styles.Text.Render("The quick brown fox jumps over the lazy dog."),
		m.styles.Muted.Render("Muted commentary text."),
		m.styles.Accent.Render("func main() { fmt.Println(\"hello\") }"),
		m.styles.Success.Render("ok") + "  " + m.styles.Warning.Render("warning") + "  " + m.styles.Error.Render("error"),
		m.styles.Selected.Render(" selected line "),
	)

	return joinLines(lines)
}

// swatchStrip renders one block per color, separated by a space.
func swatchStrip(colors []base16.Color) string {
	out := ""
	for i, color := range colors {
		if i > 0 {
			out += " "
		}
		out += lipgloss.NewStyle().Background(lipgloss.Color(color.Hex())).Render("  ")
	}
	return out
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	out := lines[0]
	for _, line := range lines[1:] {
		out += "\n" + line
	}
	return out
}
