package base16

import "fmt"

// ParseError reports a scheme document that could not be decoded at all:
// unreadable file, unknown format, or syntax the format decoder rejects.
type ParseError struct {
	Source string // file path, or "inline" for in-memory documents
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s scheme %s: %v", e.Format, e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a document that decoded cleanly but does not describe
// a valid palette: a missing base slot, a malformed color value, or a slot
// holding the wrong shape entirely.
type SchemaError struct {
	Slot   string // slot key the error applies to, empty for document-level errors
	Value  any    // offending value as decoded, nil when the slot is absent
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Slot == "" {
		return "invalid scheme: " + e.Reason
	}
	if e.Value == nil {
		return fmt.Sprintf("invalid scheme: slot %s: %s", e.Slot, e.Reason)
	}
	return fmt.Sprintf("invalid scheme: slot %s: %s (got %v)", e.Slot, e.Reason, e.Value)
}

// NotFoundError reports a preset name the built-in table does not carry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("scheme %q not found", e.Name)
}
