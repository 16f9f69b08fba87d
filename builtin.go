package base16

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultScheme is the preset used when nothing else is configured.
const DefaultScheme = "default-dark"

// presets maps preset name to its parsed scheme, built once at startup from
// the embedded files and read-only thereafter.
var presets map[string]Scheme

func init() {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("base16: read builtin schemes: %v", err))
	}

	presets = make(map[string]Scheme, len(entries))
	for _, entry := range entries {
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("base16: read builtin scheme %s: %v", entry.Name(), err))
		}
		scheme, err := FromYAML(data)
		if err != nil {
			panic(fmt.Sprintf("base16: parse builtin scheme %s: %v", entry.Name(), err))
		}
		scheme.Source = "builtin"
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		presets[name] = scheme
	}
}

// Preset returns a built-in scheme by name, for example "dracula" or
// "github". Unknown names return a *NotFoundError.
func Preset(name string) (Scheme, error) {
	scheme, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Scheme{}, &NotFoundError{Name: name}
	}
	return scheme, nil
}

// Presets returns the sorted names of the built-in schemes.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the default-dark preset.
func Default() Scheme {
	scheme, err := Preset(DefaultScheme)
	if err != nil {
		panic(fmt.Sprintf("base16: builtin scheme %s is missing", DefaultScheme))
	}
	return scheme
}
