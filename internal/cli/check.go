// Package cli provides scheme validation commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/base16"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var errCheckFailed = errors.New("scheme check failed")

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate scheme documents",
	Long: "Parse the given scheme documents and report whether they are valid.\n" +
		"Exits non-zero when any document fails.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := false
		for _, path := range args {
			result := checkFile(path)
			if !result.Valid {
				failed = true
			}
			if IsJSONOutput() || IsJSONLOutput() {
				if err := WriteOutput(os.Stdout, result); err != nil {
					return err
				}
				continue
			}
			printCheckResult(result)
		}
		if failed {
			return errCheckFailed
		}
		return nil
	},
}

// CheckResult is the payload returned by `base16 check --json`.
type CheckResult struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Kind    string `json:"kind,omitempty"`
	Slot    string `json:"slot,omitempty"`
	Error   string `json:"error,omitempty"`
	Name    string `json:"name,omitempty"`
	Variant string `json:"variant,omitempty"`
}

func checkFile(path string) CheckResult {
	result := CheckResult{Path: path}
	scheme, err := base16.Load(path)
	if err != nil {
		result.Kind, result.Slot = classify(err)
		result.Error = err.Error()
		return result
	}
	result.Valid = true
	result.Name = scheme.Name
	result.Variant = scheme.Variant
	return result
}

// classify maps a load error to a diagnostic kind and, for schema errors,
// the offending slot.
func classify(err error) (kind, slot string) {
	var parseErr *base16.ParseError
	var schemaErr *base16.SchemaError
	var notFoundErr *base16.NotFoundError
	switch {
	case errors.As(err, &schemaErr):
		return "schema", schemaErr.Slot
	case errors.As(err, &parseErr):
		return "parse", ""
	case errors.As(err, &notFoundErr):
		return "not-found", ""
	}
	return "error", ""
}

func printCheckResult(result CheckResult) {
	if result.Valid {
		fmt.Printf("%s: ok (%s, %s)\n", result.Path, result.Name, result.Variant)
		return
	}
	if result.Slot != "" {
		fmt.Printf("%s: %s error at %s: %s\n", result.Path, result.Kind, result.Slot, result.Error)
		return
	}
	fmt.Printf("%s: %s error: %s\n", result.Path, result.Kind, result.Error)
}
