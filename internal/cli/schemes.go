// Package cli provides scheme resolution helpers.
package cli

import (
	"os"

	"github.com/opencode-ai/base16"
)

// loadAllSchemes merges schemes from the configured extra directories, the
// standard search paths and the built-in presets. The first scheme found
// under a slug wins, so user directories shadow presets.
func loadAllSchemes() ([]base16.Scheme, error) {
	seen := make(map[string]bool)
	var merged []base16.Scheme

	add := func(schemes []base16.Scheme) {
		for _, scheme := range schemes {
			slug := base16.Slug(scheme.Name)
			if seen[slug] {
				continue
			}
			seen[slug] = true
			merged = append(merged, scheme)
		}
	}

	for _, dir := range cfg.SchemeDirs {
		schemes, err := base16.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		add(schemes)
	}

	standard, err := base16.LoadFromSearchPaths(projectDir())
	if err != nil {
		return nil, err
	}
	add(standard)

	logger.Debug().Int("count", len(merged)).Msg("loaded schemes")
	return merged, nil
}

// resolveScheme resolves a command line scheme argument. An existing file
// path loads directly, anything else is treated as a scheme name. An empty
// argument falls back to the configured default scheme.
func resolveScheme(arg string) (base16.Scheme, error) {
	if arg == "" {
		arg = cfg.Scheme
	}
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return base16.Load(arg)
	}
	return findScheme(arg)
}

func findScheme(name string) (base16.Scheme, error) {
	schemes, err := loadAllSchemes()
	if err != nil {
		return base16.Scheme{}, err
	}
	want := base16.Slug(name)
	for _, scheme := range schemes {
		if base16.Slug(scheme.Name) == want {
			return scheme, nil
		}
	}
	return base16.Scheme{}, &base16.NotFoundError{Name: name}
}
