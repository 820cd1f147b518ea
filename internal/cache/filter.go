package cache

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter selects templates by file name. A name is kept when it matches
// any Include pattern (or Include is empty) and no Exclude pattern.
type Filter struct {
	Include []string
	Exclude []string
}

// Validate checks every pattern's syntax.
func (f Filter) Validate() error {
	for _, patterns := range [][]string{f.Include, f.Exclude} {
		for _, pattern := range patterns {
			if !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("invalid glob pattern %q", pattern)
			}
		}
	}
	return nil
}

// Match reports whether name passes the filter.
func (f Filter) Match(name string) bool {
	normalized := filepath.ToSlash(name)
	if len(f.Include) > 0 && !matchAny(f.Include, normalized) {
		return false
	}
	return !matchAny(f.Exclude, normalized)
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
