package assets

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/alnah/go-maintpage/internal/fileutil"
)

// Paths returns the starter's file paths, sorted.
func (s *Starter) Paths() []string {
	paths := make([]string, 0, len(s.Files))
	for p := range s.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Scaffold writes the starter's files under dir and returns the written
// paths. Unless overwrite is set, nothing is written when any target
// already exists.
func Scaffold(dir string, s *Starter, overwrite bool) ([]string, error) {
	paths := s.Paths()
	targets := make([]string, len(paths))
	for i, p := range paths {
		targets[i] = filepath.Join(dir, filepath.FromSlash(p))
		if !overwrite && fileutil.FileExists(targets[i]) {
			return nil, fmt.Errorf("%w: %s", ErrFileExists, targets[i])
		}
	}

	for i, p := range paths {
		if err := fileutil.WriteFile(targets[i], s.Files[p]); err != nil {
			return targets[:i], err
		}
	}
	return targets, nil
}
