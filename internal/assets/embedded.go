package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// all: keeps Sass partials such as _settings.scss.
//
//go:embed all:starters
var starters embed.FS

// EmbeddedLoader loads starters from the embedded filesystem.
// Implements StarterLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStarter loads an embedded starter by name.
func (e *EmbeddedLoader) LoadStarter(name string) (*Starter, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	root := "starters/" + name
	if _, err := fs.Stat(starters, root); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStarterNotFound, name)
	}

	files := make(map[string]string)
	err := fs.WalkDir(starters, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := starters.ReadFile(p)
		if err != nil {
			return err
		}
		files[strings.TrimPrefix(p, root+"/")] = string(content)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return &Starter{Name: name, Files: files}, nil
}

// List returns the names of the embedded starters, sorted.
func (e *EmbeddedLoader) List() []string {
	entries, err := fs.ReadDir(starters, "starters")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, path.Base(entry.Name()))
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ StarterLoader = (*EmbeddedLoader)(nil)
