// Package cli provides machine-readable output helpers.
package cli

import (
	"encoding/json"
	"io"
)

// IsJSONOutput reports whether --json was set.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was set.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// WriteOutput writes the payload to out as JSON. JSONL mode writes one
// compact line per call, JSON mode indents for reading.
func WriteOutput(out io.Writer, payload any) error {
	encoder := json.NewEncoder(out)
	if !IsJSONLOutput() {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(payload)
}
