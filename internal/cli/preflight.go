// Package cli provides preflight errors with recovery hints.
package cli

import "strings"

// PreflightError is a user-facing error raised before a command does any
// work, carrying a hint and a suggested next step.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	parts := []string{e.Message}
	if e.Hint != "" {
		parts = append(parts, "Hint: "+e.Hint)
	}
	if e.NextStep != "" {
		parts = append(parts, "Next: "+e.NextStep)
	}
	return strings.Join(parts, "\n")
}
