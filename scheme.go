package base16

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Scheme is a named palette as loaded from a document or the built-in table.
type Scheme struct {
	Name    string
	Author  string
	Variant string // "dark" or "light", derived from the palette when the document omits it
	Source  string // file path the scheme came from, "builtin" or "inline"
	Palette Palette
}

// Format identifies a scheme document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatForPath picks the document format for a file path by extension.
// Unrecognized extensions fall back to YAML, the historical distribution
// format for base16 schemes.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// schemeDoc is the serialized shape of a scheme document. Colors are kept as
// hex strings so the three encoders agree on the output.
type schemeDoc struct {
	Scheme  string `yaml:"scheme" toml:"scheme" json:"scheme"`
	Author  string `yaml:"author,omitempty" toml:"author,omitempty" json:"author,omitempty"`
	Variant string `yaml:"variant,omitempty" toml:"variant,omitempty" json:"variant,omitempty"`

	Base00 string `yaml:"base00" toml:"base00" json:"base00"`
	Base01 string `yaml:"base01" toml:"base01" json:"base01"`
	Base02 string `yaml:"base02" toml:"base02" json:"base02"`
	Base03 string `yaml:"base03" toml:"base03" json:"base03"`
	Base04 string `yaml:"base04" toml:"base04" json:"base04"`
	Base05 string `yaml:"base05" toml:"base05" json:"base05"`
	Base06 string `yaml:"base06" toml:"base06" json:"base06"`
	Base07 string `yaml:"base07" toml:"base07" json:"base07"`
	Base08 string `yaml:"base08" toml:"base08" json:"base08"`
	Base09 string `yaml:"base09" toml:"base09" json:"base09"`
	Base0A string `yaml:"base0a" toml:"base0a" json:"base0a"`
	Base0B string `yaml:"base0b" toml:"base0b" json:"base0b"`
	Base0C string `yaml:"base0c" toml:"base0c" json:"base0c"`
	Base0D string `yaml:"base0d" toml:"base0d" json:"base0d"`
	Base0E string `yaml:"base0e" toml:"base0e" json:"base0e"`
	Base0F string `yaml:"base0f" toml:"base0f" json:"base0f"`

	Background string `yaml:"background" toml:"background" json:"background"`
	Foreground string `yaml:"foreground" toml:"foreground" json:"foreground"`
	Cursor     string `yaml:"cursor" toml:"cursor" json:"cursor"`
	Selection  string `yaml:"selection" toml:"selection" json:"selection"`
}

// Encode renders the scheme as a document in the given format. Colors are
// written as bare hex the way distributed base16 files spell them, and the
// emitted document parses back to an equal palette.
func Encode(s Scheme, format Format) ([]byte, error) {
	slots := s.Palette.Slots()
	hex := func(c Color) string {
		return strings.TrimPrefix(c.Hex(), "#")
	}
	doc := schemeDoc{
		Scheme:  s.Name,
		Author:  s.Author,
		Variant: s.Variant,

		Base00: hex(slots[0]), Base01: hex(slots[1]),
		Base02: hex(slots[2]), Base03: hex(slots[3]),
		Base04: hex(slots[4]), Base05: hex(slots[5]),
		Base06: hex(slots[6]), Base07: hex(slots[7]),
		Base08: hex(slots[8]), Base09: hex(slots[9]),
		Base0A: hex(slots[10]), Base0B: hex(slots[11]),
		Base0C: hex(slots[12]), Base0D: hex(slots[13]),
		Base0E: hex(slots[14]), Base0F: hex(slots[15]),

		Background: hex(s.Palette.Background),
		Foreground: hex(s.Palette.Foreground),
		Cursor:     hex(s.Palette.Cursor),
		Selection:  hex(s.Palette.Selection),
	}

	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("unknown scheme format %q", format)
	}
}
