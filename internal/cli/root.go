// Package cli implements the base16 command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/base16/internal/config"
)

var (
	jsonOutput     bool
	jsonlOutput    bool
	noColor        bool
	nonInteractive bool
	verbose        bool
	configPath     string

	cfg    *config.Config
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "base16",
	Short: "Inspect and export base16 color schemes",
	Long: "base16 loads color schemes from YAML, TOML or JSON documents,\n" +
		"resolves built-in presets and exports schemes for other tools.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = newLogger(cfg.LogLevel)
		applyColorMode()
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&jsonlOutput, "jsonl", false, "emit newline-delimited JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled terminal output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "skip prompts and interactive surfaces")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/base16/config.yaml)")
}

func newLogger(configured string) zerolog.Logger {
	level := zerolog.WarnLevel
	if parsed, err := zerolog.ParseLevel(configured); err == nil && configured != "" {
		level = parsed
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// applyColorMode pins the lipgloss color profile when the user forced a
// mode. In auto mode lipgloss detects the terminal on its own.
func applyColorMode() {
	mode := cfg.Color
	if noColor {
		mode = "never"
	}
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

func projectDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return dir
}
