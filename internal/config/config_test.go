package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/base16"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scheme != base16.DefaultScheme {
		t.Fatalf("expected default scheme %s, got %q", base16.DefaultScheme, cfg.Scheme)
	}
	if cfg.Color != "auto" {
		t.Fatalf("expected auto color mode, got %q", cfg.Color)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected warn log level, got %q", cfg.LogLevel)
	}
}

func TestLoadFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "base16")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	doc := "scheme: nord\ncolor: never\nscheme_dirs:\n  - /opt/schemes\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(doc), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scheme != "nord" {
		t.Fatalf("expected nord, got %q", cfg.Scheme)
	}
	if cfg.Color != "never" {
		t.Fatalf("expected never, got %q", cfg.Color)
	}
	if len(cfg.SchemeDirs) != 1 || cfg.SchemeDirs[0] != "/opt/schemes" {
		t.Fatalf("unexpected scheme dirs: %v", cfg.SchemeDirs)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("scheme: monokai\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scheme != "monokai" {
		t.Fatalf("expected monokai, got %q", cfg.Scheme)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BASE16_SCHEME", "gruvbox-dark-hard")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scheme != "gruvbox-dark-hard" {
		t.Fatalf("env override not applied, got %q", cfg.Scheme)
	}
}

func TestValidateColorMode(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BASE16_COLOR", "sometimes")

	_, err := Load("")
	if err == nil {
		t.Fatalf("expected error for unknown color mode")
	}
	if !strings.Contains(err.Error(), "color") {
		t.Fatalf("unexpected error: %v", err)
	}
}
