package base16

import (
	"os"
	"path/filepath"
	"strings"
)

// SchemeSearchPaths returns scheme search directories in precedence order:
// the project-local directory, the user config directory, then the system
// share directory.
func SchemeSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".base16", "schemes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "base16", "schemes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "base16", "schemes"))
	return paths
}

// Slug normalizes a scheme name for lookup: lowercased, whitespace and
// underscores collapsed to single dashes. "Solarized Dark" and
// "solarized-dark" share a slug.
func Slug(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.ReplaceAll(strings.Join(fields, "-"), "_", "-")
}

// LoadFromSearchPaths returns every scheme visible from the search
// directories plus the built-in presets. Earlier directories win name
// collisions, and a user scheme shadows a preset with the same slug.
func LoadFromSearchPaths(projectDir string) ([]Scheme, error) {
	seen := make(map[string]Scheme)
	order := make([]string, 0)

	for _, dir := range SchemeSearchPaths(projectDir) {
		schemes, err := LoadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, scheme := range schemes {
			key := Slug(scheme.Name)
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = scheme
			order = append(order, key)
		}
	}

	for _, name := range Presets() {
		if _, exists := seen[name]; exists {
			continue
		}
		preset, err := Preset(name)
		if err != nil {
			return nil, err
		}
		seen[name] = preset
		order = append(order, name)
	}

	resolved := make([]Scheme, 0, len(order))
	for _, key := range order {
		resolved = append(resolved, seen[key])
	}
	return resolved, nil
}

// Find resolves a scheme by name across the search directories and the
// built-in presets, matching by slug.
func Find(projectDir, name string) (Scheme, error) {
	schemes, err := LoadFromSearchPaths(projectDir)
	if err != nil {
		return Scheme{}, err
	}
	want := Slug(name)
	for _, scheme := range schemes {
		if Slug(scheme.Name) == want {
			return scheme, nil
		}
	}
	return Scheme{}, &NotFoundError{Name: name}
}
