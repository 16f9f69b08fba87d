// Package config loads tool configuration for the base16 CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/opencode-ai/base16"
)

// Config holds the tool settings. The library takes no configuration;
// everything here drives the CLI and the scheme browser.
type Config struct {
	// Scheme is the scheme used when a command gets no explicit name.
	Scheme string `mapstructure:"scheme"`
	// Color controls styled output: auto, always or never.
	Color string `mapstructure:"color"`
	// LogLevel sets the stderr log threshold.
	LogLevel string `mapstructure:"log_level"`
	// SchemeDirs lists extra scheme directories, searched before the
	// standard locations.
	SchemeDirs []string `mapstructure:"scheme_dirs"`
}

// Dir returns the user configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "base16"), nil
}

// Load reads configuration from the given file, or from the default
// location when path is empty. A missing default file yields the defaults;
// a missing explicit file is an error. Environment variables with the
// BASE16 prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("scheme", base16.DefaultScheme)
	v.SetDefault("color", "auto")
	v.SetDefault("log_level", "warn")
	v.SetDefault("scheme_dirs", []string{})

	v.SetEnvPrefix("BASE16")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}
