// Package cli provides scheme inspection commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/base16"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [scheme]",
	Short: "Show a scheme's colors",
	Long: "Show the sixteen base slots and the derived roles of a scheme.\n" +
		"The argument is a scheme name or a file path; without an argument\n" +
		"the configured default scheme is shown.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}
		scheme, err := resolveScheme(arg)
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, schemeDetail(scheme))
		}
		return printScheme(os.Stdout, scheme)
	},
}

// SchemeDetail is the payload returned by `base16 show --json`.
type SchemeDetail struct {
	Name       string            `json:"name"`
	Slug       string            `json:"slug"`
	Author     string            `json:"author,omitempty"`
	Variant    string            `json:"variant"`
	Source     string            `json:"source"`
	Slots      map[string]string `json:"slots"`
	Background string            `json:"background"`
	Foreground string            `json:"foreground"`
	Cursor     string            `json:"cursor"`
	Selection  string            `json:"selection"`
}

func schemeDetail(scheme base16.Scheme) SchemeDetail {
	slots := scheme.Palette.Slots()
	byName := make(map[string]string, len(slots))
	for i, name := range base16.SlotNames() {
		byName[name] = slots[i].Hex()
	}
	return SchemeDetail{
		Name:       scheme.Name,
		Slug:       base16.Slug(scheme.Name),
		Author:     scheme.Author,
		Variant:    scheme.Variant,
		Source:     scheme.Source,
		Slots:      byName,
		Background: scheme.Palette.Background.Hex(),
		Foreground: scheme.Palette.Foreground.Hex(),
		Cursor:     scheme.Palette.Cursor.Hex(),
		Selection:  scheme.Palette.Selection.Hex(),
	}
}

func printScheme(out io.Writer, scheme base16.Scheme) error {
	pairs := [][2]string{{"Name", scheme.Name}}
	if scheme.Author != "" {
		pairs = append(pairs, [2]string{"Author", scheme.Author})
	}
	pairs = append(pairs,
		[2]string{"Variant", scheme.Variant},
		[2]string{"Source", scheme.Source},
	)
	if err := writeKeyValues(out, pairs); err != nil {
		return err
	}
	fmt.Fprintln(out)

	slots := scheme.Palette.Slots()
	for i, name := range base16.SlotNames() {
		ansi := strconv.Itoa(int(slots[i].ANSI256()))
		fmt.Fprintln(out, slotLine(name, slots[i], ansi))
	}

	fmt.Fprintln(out)
	roles := []struct {
		name  string
		color base16.Color
	}{
		{"background", scheme.Palette.Background},
		{"foreground", scheme.Palette.Foreground},
		{"cursor", scheme.Palette.Cursor},
		{"selection", scheme.Palette.Selection},
	}
	for _, role := range roles {
		fmt.Fprintln(out, slotLine(role.name, role.color, ""))
	}
	return nil
}

func slotLine(name string, color base16.Color, ansi string) string {
	return fmt.Sprintf("%-10s  %s  %3s  %s", name, color.Hex(), ansi, swatch(color))
}

func swatch(color base16.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color.Hex())).Render("      ")
}
