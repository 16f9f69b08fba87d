// Package cli provides helpers for interactive mode detection.
package cli

import "os"

// IsNonInteractive reports whether interactive surfaces should be skipped.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("BASE16_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}
