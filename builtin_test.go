package base16

import (
	"errors"
	"testing"
)

func TestPresetDracula(t *testing.T) {
	scheme, err := Preset("dracula")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	if scheme.Name != "Dracula" {
		t.Fatalf("expected name Dracula, got %q", scheme.Name)
	}
	if scheme.Source != "builtin" {
		t.Fatalf("expected builtin source, got %q", scheme.Source)
	}
	if scheme.Variant != "dark" {
		t.Fatalf("expected dark variant, got %q", scheme.Variant)
	}

	want := [16]string{
		"#282936", "#3a3c4e", "#4d4f68", "#626483",
		"#62d6e8", "#e9e9f4", "#f1f2f8", "#f7f7fb",
		"#ea51b2", "#b45bcf", "#00f769", "#ebff87",
		"#a1efe4", "#62d6e8", "#b45bcf", "#00f769",
	}
	slots := scheme.Palette.Slots()
	for i, hex := range want {
		if got := slots[i].Hex(); got != hex {
			t.Fatalf("slot %s = %s, want %s", SlotNames()[i], got, hex)
		}
	}

	p := scheme.Palette
	if p.Background != p.Base00 || p.Foreground != p.Base07 {
		t.Fatalf("derived roles do not follow the fallback rule")
	}
	if p.Cursor != p.Base05 || p.Selection != p.Base02 {
		t.Fatalf("derived roles do not follow the fallback rule")
	}
}

func TestPresetGithubIsLight(t *testing.T) {
	scheme, err := Preset("github")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	if scheme.Variant != "light" {
		t.Fatalf("expected light variant, got %q", scheme.Variant)
	}
	if got := scheme.Palette.Base00.Hex(); got != "#ffffff" {
		t.Fatalf("unexpected base00: %s", got)
	}
	if got := scheme.Palette.Base05.Hex(); got != "#333333" {
		t.Fatalf("unexpected base05: %s", got)
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("does-not-exist")
	if err == nil {
		t.Fatalf("expected error for unknown preset")
	}
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
	if nferr.Name != "does-not-exist" {
		t.Fatalf("expected requested name in error, got %q", nferr.Name)
	}
}

func TestPresetNameNormalization(t *testing.T) {
	if _, err := Preset("  DRACULA  "); err != nil {
		t.Fatalf("preset lookup should trim and lowercase: %v", err)
	}
}

func TestPresets(t *testing.T) {
	names := Presets()
	if len(names) < 10 {
		t.Fatalf("expected at least 10 builtin schemes, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for _, required := range []string{"dracula", "github", "nord", "solarized-dark", DefaultScheme} {
		if !seen[required] {
			t.Fatalf("missing builtin scheme %q", required)
		}
	}
}

func TestBuiltinsResolve(t *testing.T) {
	for _, name := range Presets() {
		scheme, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if scheme.Name == "" {
			t.Fatalf("builtin %q has no display name", name)
		}
		if scheme.Source != "builtin" {
			t.Fatalf("builtin %q has source %q", name, scheme.Source)
		}
		if scheme.Variant != "dark" && scheme.Variant != "light" {
			t.Fatalf("builtin %q has variant %q", name, scheme.Variant)
		}
		if Slug(scheme.Name) != name {
			t.Fatalf("builtin %q display name %q does not slug back to its key", name, scheme.Name)
		}
	}
}

func TestDefault(t *testing.T) {
	scheme := Default()
	if Slug(scheme.Name) != DefaultScheme {
		t.Fatalf("expected %s, got %q", DefaultScheme, scheme.Name)
	}
	if !scheme.Palette.IsDark() {
		t.Fatalf("default scheme should be dark")
	}
}
