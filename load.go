package base16

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a single scheme document from disk. The format is picked from
// the file extension; unrecognized extensions parse as YAML. A scheme with
// no name in the document is named after the file.
func Load(path string) (Scheme, error) {
	if strings.TrimSpace(path) == "" {
		return Scheme{}, fmt.Errorf("scheme path is required")
	}

	format := FormatForPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return Scheme{}, &ParseError{Source: path, Format: format, Err: err}
	}

	scheme, err := parseAs(data, format, path)
	if err != nil {
		var serr *SchemaError
		if errors.As(err, &serr) {
			return Scheme{}, fmt.Errorf("scheme %s: %w", path, err)
		}
		return Scheme{}, err
	}
	if scheme.Name == "" {
		scheme.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scheme, nil
}

// Parse parses an in-memory scheme document in the given format.
func Parse(data []byte, format Format) (Scheme, error) {
	return parseAs(data, format, "inline")
}

// FromYAML parses a YAML scheme document.
func FromYAML(data []byte) (Scheme, error) {
	return parseAs(data, FormatYAML, "inline")
}

// FromTOML parses a TOML scheme document.
func FromTOML(data []byte) (Scheme, error) {
	return parseAs(data, FormatTOML, "inline")
}

// FromJSON parses a JSON scheme document.
func FromJSON(data []byte) (Scheme, error) {
	return parseAs(data, FormatJSON, "inline")
}

// LoadDir loads every scheme document in a directory, sorted by scheme
// name. A missing directory yields an empty result.
func LoadDir(dir string) ([]Scheme, error) {
	if strings.TrimSpace(dir) == "" {
		return []Scheme{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Scheme{}, nil
		}
		return nil, fmt.Errorf("read schemes dir %s: %w", dir, err)
	}

	schemes := make([]Scheme, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml", ".toml", ".json":
		default:
			continue
		}
		scheme, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		schemes = append(schemes, scheme)
	}

	sort.Slice(schemes, func(i, j int) bool {
		return schemes[i].Name < schemes[j].Name
	})

	return schemes, nil
}

func parseAs(data []byte, format Format, source string) (Scheme, error) {
	var doc map[string]any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		err = fmt.Errorf("unknown scheme format %q", format)
	}
	if err != nil {
		return Scheme{}, &ParseError{Source: source, Format: format, Err: err}
	}
	return resolve(doc, source)
}

// resolve maps a decoded document onto a Scheme: all sixteen base slots are
// required, UI-role slots fall back to their base slots, unknown keys are
// ignored.
func resolve(doc map[string]any, source string) (Scheme, error) {
	if len(doc) == 0 {
		return Scheme{}, &SchemaError{Reason: "document is empty"}
	}

	fields := make(map[string]any, len(doc))
	for k, v := range doc {
		fields[strings.ToLower(strings.TrimSpace(k))] = v
	}

	var base [16]Color
	for i, slot := range slotNames {
		raw, ok := fields[slot]
		if !ok {
			return Scheme{}, &SchemaError{Slot: slot, Reason: "slot is required"}
		}
		c, err := coerceColor(slot, raw)
		if err != nil {
			return Scheme{}, err
		}
		base[i] = c
	}
	palette := NewPalette(base)

	if raw, ok := fields["background"]; ok {
		c, err := coerceColor("background", raw)
		if err != nil {
			return Scheme{}, err
		}
		palette = palette.WithBackground(c)
	}
	if raw, ok := fields["foreground"]; ok {
		c, err := coerceColor("foreground", raw)
		if err != nil {
			return Scheme{}, err
		}
		palette = palette.WithForeground(c)
	}
	if raw, ok := fields["cursor"]; ok {
		c, err := coerceColor("cursor", raw)
		if err != nil {
			return Scheme{}, err
		}
		palette = palette.WithCursor(c)
	}
	if raw, ok := fields["selection"]; ok {
		c, err := coerceColor("selection", raw)
		if err != nil {
			return Scheme{}, err
		}
		palette = palette.WithSelection(c)
	}

	scheme := Scheme{
		Name:    stringField(fields, "scheme", "name"),
		Author:  stringField(fields, "author"),
		Variant: strings.ToLower(stringField(fields, "variant")),
		Source:  source,
		Palette: palette,
	}
	if scheme.Variant == "" {
		if palette.IsDark() {
			scheme.Variant = "dark"
		} else {
			scheme.Variant = "light"
		}
	}
	return scheme, nil
}

// coerceColor accepts the two value shapes a slot may hold: a hex string
// (with or without the leading '#') or a sequence of exactly three integers
// in the 0 to 255 range.
func coerceColor(slot string, raw any) (Color, error) {
	switch v := raw.(type) {
	case string:
		c, err := ParseColor(v)
		if err != nil {
			var serr *SchemaError
			if errors.As(err, &serr) {
				serr.Slot = slot
				return Color{}, serr
			}
			return Color{}, err
		}
		return c, nil
	case []any:
		return coerceTriple(slot, v)
	default:
		return Color{}, &SchemaError{Slot: slot, Value: raw, Reason: "color must be a hex string or an RGB triple"}
	}
}

func coerceTriple(slot string, parts []any) (Color, error) {
	if len(parts) != 3 {
		return Color{}, &SchemaError{Slot: slot, Value: parts, Reason: "RGB triple must have exactly 3 components"}
	}
	var channel [3]uint8
	for i, part := range parts {
		n, ok := toInt(part)
		if !ok {
			return Color{}, &SchemaError{Slot: slot, Value: part, Reason: "RGB component must be an integer"}
		}
		if n < 0 || n > 255 {
			return Color{}, &SchemaError{Slot: slot, Value: part, Reason: "RGB component must be between 0 and 255"}
		}
		channel[i] = uint8(n)
	}
	return Color{R: channel[0], G: channel[1], B: channel[2]}, nil
}

// toInt unifies the integer types the decoders produce: int from YAML,
// int64 from TOML, float64 from JSON.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if math.IsInf(n, 0) || n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func stringField(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := fields[key]; ok {
			if s, ok := v.(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
