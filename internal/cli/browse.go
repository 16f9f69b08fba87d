// Package cli provides TUI launch commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/base16/internal/tui"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse schemes interactively",
	Long: "Browse schemes in a terminal UI with a live preview.\n" +
		"The selected scheme name is printed when the browser exits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowser()
	},
}

func runBrowser() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "browse requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use list and show",
			NextStep: "base16 list",
		}
	}

	schemes, err := loadAllSchemes()
	if err != nil {
		return err
	}

	choice, err := tui.Run(schemes)
	if err != nil {
		return err
	}
	if choice != "" {
		fmt.Println(choice)
	}
	return nil
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
