package sift

import (
	"fmt"
	"path/filepath"
	"sort"
)

// BuildFileGlob composes a filename pattern from the optional fragments of
// an archive naming convention: prefix, date, postfix, extension, in that
// order. Absent fragments contribute nothing beyond the implicit leading
// wildcard; with every fragment absent the pattern is a bare "*".
func BuildFileGlob(prefix, date, postfix, extension string) string {
	base := "*"

	if prefix != "" {
		base = prefix + "*"
	}

	if date != "" {
		base += date + "*"
	}

	base += postfix
	base += extension

	return base
}

// LocateFiles expands a glob pattern against a folder and returns the
// matching paths, sorted for deterministic processing order.
func LocateFiles(folder, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(folder, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	sort.Strings(matches)

	return matches, nil
}
