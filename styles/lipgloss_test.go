package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/base16"
)

func TestNewPicksDocumentedSlots(t *testing.T) {
	scheme, err := base16.Preset("dracula")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	p := scheme.Palette
	s := New(p)

	cases := []struct {
		role  string
		style lipgloss.Style
		want  base16.Color
	}{
		{"text", s.Text, p.Base05},
		{"muted", s.Muted, p.Base03},
		{"accent", s.Accent, p.Base0E},
		{"heading", s.Heading, p.Base0D},
		{"success", s.Success, p.Base0B},
		{"warning", s.Warning, p.Base0A},
		{"error", s.Error, p.Base08},
		{"info", s.Info, p.Base0D},
	}
	for _, tc := range cases {
		if got := tc.style.GetForeground(); got != lipgloss.Color(tc.want.Hex()) {
			t.Fatalf("%s should use %s, got %v", tc.role, tc.want.Hex(), got)
		}
	}

	if got := s.Selected.GetBackground(); got != lipgloss.Color(p.Selection.Hex()) {
		t.Fatalf("selected should use the selection background, got %v", got)
	}
	if !s.Title.GetBold() || !s.Heading.GetBold() {
		t.Fatalf("title and heading should be bold")
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.Tokens.Text == "" || s.Tokens.Background == "" {
		t.Fatalf("default tokens incomplete: %+v", s.Tokens)
	}
	if got := s.Text.GetForeground(); got != lipgloss.Color(s.Tokens.Text) {
		t.Fatalf("text style does not match tokens: %v", got)
	}
}
