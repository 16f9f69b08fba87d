// Package cli provides tests for scheme resolution helpers.
package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/base16"
	"github.com/opencode-ai/base16/internal/config"
)

// withTestConfig isolates resolution from the host: a fresh HOME, an empty
// default config and the package globals restored afterwards.
func withTestConfig(t *testing.T, c *config.Config) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	if c == nil {
		c = &config.Config{Scheme: base16.DefaultScheme, Color: "never", LogLevel: "warn"}
	}
	original := cfg
	cfg = c
	t.Cleanup(func() { cfg = original })
}

func writeDir(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func schemeDoc(name, base00 string) string {
	doc := "scheme: \"" + name + "\"\n"
	doc += "base00: \"" + base00 + "\"\n"
	slots := []string{
		"base01", "base02", "base03", "base04", "base05", "base06", "base07",
		"base08", "base09", "base0a", "base0b", "base0c", "base0d", "base0e", "base0f",
	}
	for _, slot := range slots {
		doc += slot + ": \"808080\"\n"
	}
	return doc
}

func TestResolveSchemeByPath(t *testing.T) {
	withTestConfig(t, nil)
	dir := writeDir(t, map[string]string{"rose.yaml": schemeDoc("Rose", "111111")})
	path := filepath.Join(dir, "rose.yaml")

	scheme, err := resolveScheme(path)
	require.NoError(t, err)
	require.Equal(t, "Rose", scheme.Name)
	require.Equal(t, path, scheme.Source)
	require.Equal(t, "#111111", scheme.Palette.Base00.Hex())
}

func TestResolveSchemeByName(t *testing.T) {
	withTestConfig(t, nil)

	scheme, err := resolveScheme("dracula")
	require.NoError(t, err)
	require.Equal(t, "Dracula", scheme.Name)
	require.Equal(t, "builtin", scheme.Source)
}

func TestResolveSchemeDefaultsFromConfig(t *testing.T) {
	withTestConfig(t, &config.Config{Scheme: "nord", Color: "never", LogLevel: "warn"})

	scheme, err := resolveScheme("")
	require.NoError(t, err)
	require.Equal(t, "Nord", scheme.Name)
}

func TestFindSchemeConfigDirShadowsPresets(t *testing.T) {
	dir := writeDir(t, map[string]string{"dracula.yaml": schemeDoc("Dracula", "123456")})
	withTestConfig(t, &config.Config{
		Scheme:     base16.DefaultScheme,
		Color:      "never",
		LogLevel:   "warn",
		SchemeDirs: []string{dir},
	})

	scheme, err := findScheme("dracula")
	require.NoError(t, err)
	require.Equal(t, "#123456", scheme.Palette.Base00.Hex())
	require.NotEqual(t, "builtin", scheme.Source)
}

func TestFindSchemeUnknown(t *testing.T) {
	withTestConfig(t, nil)

	_, err := findScheme("no-such-scheme")
	require.Error(t, err)

	var notFound *base16.NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "no-such-scheme", notFound.Name)
}

func TestLoadAllSchemesDeduplicates(t *testing.T) {
	dir := writeDir(t, map[string]string{
		"dracula.yaml": schemeDoc("Dracula", "123456"),
		"extra.yaml":   schemeDoc("Extra", "222222"),
	})
	withTestConfig(t, &config.Config{
		Scheme:     base16.DefaultScheme,
		Color:      "never",
		LogLevel:   "warn",
		SchemeDirs: []string{dir},
	})

	schemes, err := loadAllSchemes()
	require.NoError(t, err)

	// one extra scheme, and the shadowed dracula counted once
	require.Len(t, schemes, len(base16.Presets())+1)

	draculas := 0
	for _, scheme := range schemes {
		if base16.Slug(scheme.Name) == "dracula" {
			draculas++
			require.Equal(t, "#123456", scheme.Palette.Base00.Hex())
		}
	}
	require.Equal(t, 1, draculas)
}

func TestLoadAllSchemesMissingDirIgnored(t *testing.T) {
	withTestConfig(t, &config.Config{
		Scheme:     base16.DefaultScheme,
		Color:      "never",
		LogLevel:   "warn",
		SchemeDirs: []string{filepath.Join(t.TempDir(), "missing")},
	})

	schemes, err := loadAllSchemes()
	require.NoError(t, err)
	require.Len(t, schemes, len(base16.Presets()))
}
