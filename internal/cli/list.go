// Package cli provides scheme listing commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/base16"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available schemes",
	Long:  "List built-in presets and schemes found in the search directories.",
	RunE: func(cmd *cobra.Command, args []string) error {
		schemes, err := loadAllSchemes()
		if err != nil {
			return err
		}

		if IsJSONLOutput() {
			for _, scheme := range schemes {
				if err := WriteOutput(os.Stdout, schemeInfo(scheme)); err != nil {
					return err
				}
			}
			return nil
		}
		if IsJSONOutput() {
			return WriteOutput(os.Stdout, schemeListing(schemes))
		}

		headers := []string{"NAME", "VARIANT", "AUTHOR", "SOURCE"}
		rows := make([][]string, 0, len(schemes))
		for _, scheme := range schemes {
			rows = append(rows, []string{scheme.Name, scheme.Variant, scheme.Author, scheme.Source})
		}
		return writeTable(os.Stdout, headers, rows)
	},
}

// SchemeListing is the payload returned by `base16 list --json`.
type SchemeListing struct {
	Schemes []SchemeInfo `json:"schemes"`
}

// SchemeInfo is one scheme entry in list output.
type SchemeInfo struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Author  string `json:"author,omitempty"`
	Variant string `json:"variant"`
	Source  string `json:"source"`
}

func schemeListing(schemes []base16.Scheme) SchemeListing {
	listing := SchemeListing{Schemes: make([]SchemeInfo, 0, len(schemes))}
	for _, scheme := range schemes {
		listing.Schemes = append(listing.Schemes, schemeInfo(scheme))
	}
	return listing
}

func schemeInfo(scheme base16.Scheme) SchemeInfo {
	return SchemeInfo{
		Name:    scheme.Name,
		Slug:    base16.Slug(scheme.Name),
		Author:  scheme.Author,
		Variant: scheme.Variant,
		Source:  scheme.Source,
	}
}
