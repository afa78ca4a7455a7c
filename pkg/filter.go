package dupfinder

import (
	"fmt"
	"regexp"

	"github.com/gobwas/glob"
)

// NameFilter decides whether a file name participates in a scan. A file
// is accepted when any glob pattern matches OR the regular expression
// matches. A filter with no patterns accepts everything.
type NameFilter struct {
	globs []glob.Glob
	regex *regexp.Regexp
}

// NewNameFilter compiles the glob patterns and the optional regular
// expression. Pattern compilation failures are configuration errors and
// must abort startup before any scanning begins.
func NewNameFilter(patterns []string, regexPattern string) (*NameFilter, error) {
	filter := &NameFilter{}

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		filter.globs = append(filter.globs, g)
	}

	if regexPattern != "" {
		re, err := regexp.Compile(regexPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regular expression %q: %w", regexPattern, err)
		}
		filter.regex = re
	}

	return filter, nil
}

// Configured reports whether any pattern was supplied.
func (f *NameFilter) Configured() bool {
	return f != nil && (len(f.globs) > 0 || f.regex != nil)
}

// Accepts reports whether a file with the given base name should be
// scanned. Nameless entries are rejected whenever a filter is active.
func (f *NameFilter) Accepts(name string) bool {
	if !f.Configured() {
		return true
	}
	if name == "" {
		return false
	}

	for _, g := range f.globs {
		if g.Match(name) {
			return true
		}
	}
	if f.regex != nil && f.regex.MatchString(name) {
		return true
	}

	return false
}
