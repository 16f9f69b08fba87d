// Package cli provides scheme export commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/base16"
)

var (
	exportFormat string
	exportOut    string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "output format: yaml, toml, json or windows-terminal")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to a file instead of stdout")
}

var exportCmd = &cobra.Command{
	Use:   "export [scheme]",
	Short: "Export a scheme",
	Long: "Export a scheme as a YAML, TOML or JSON document, or as a\n" +
		"Windows Terminal color scheme. Without an argument the configured\n" +
		"default scheme is exported.",
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

		format := exportFormat
		if !cmd.Flags().Changed("format") && exportOut != "" {
			format = string(base16.FormatForPath(exportOut))
		}

		data, err := encodeScheme(scheme, format)
		if err != nil {
			return err
		}

		if exportOut != "" {
			if err := os.WriteFile(exportOut, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", exportOut, err)
			}
			logger.Debug().Str("path", exportOut).Str("format", format).Msg("exported scheme")
			return nil
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

// encodeScheme renders a scheme in the requested export format. The output
// always ends with a newline so it can go straight to a terminal.
func encodeScheme(scheme base16.Scheme, format string) ([]byte, error) {
	var data []byte
	var err error
	switch format {
	case "windows-terminal", "wt":
		data, err = json.MarshalIndent(scheme.Terminal(), "", "  ")
	default:
		data, err = base16.Encode(scheme, base16.Format(format))
	}
	if err != nil {
		return nil, err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}
