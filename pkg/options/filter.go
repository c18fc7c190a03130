package options

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/gobwas/glob"
)

// Wildcard is the list entry that matches every value.
const Wildcard = "*"

// Base holds include/exclude lists matched with exact string
// comparison. An absent include list means every value is included by
// default; the exclude list has higher precedence than the include
// list.
type Base struct {
	// Include lists the included options. If not explicitly defined, all
	// options are included by default.
	Include []string `yaml:"include,omitempty"`

	// Exclude lists the excluded options. Has higher precedence than
	// Include.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Filter reports whether value fits this specification.
func (b *Base) Filter(value string) bool {
	included := len(b.Include) == 0 ||
		slices.Contains(b.Include, value) ||
		slices.Contains(b.Include, Wildcard)
	excluded := len(b.Exclude) > 0 &&
		(slices.Contains(b.Exclude, value) || slices.Contains(b.Exclude, Wildcard))

	return included && !excluded
}

// Glob holds include/exclude lists whose entries are shell-style glob
// patterns ('*' matches any run of characters, '?' a single character,
// '[...]' a character class). The precedence rules are the same as for
// Base; the single-character pattern "*" matching everything is just a
// special case of glob matching.
type Glob struct {
	// Include lists the included options. Supports glob/wildcard syntax.
	Include []string `yaml:"include,omitempty"`

	// Exclude lists the excluded options. Supports glob/wildcard syntax
	// and has higher precedence than Include.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Filter reports whether value fits this specification. A malformed
// pattern in either list is returned as an error so that it surfaces to
// the operator at configuration-load time instead of being masked.
func (g *Glob) Filter(value string) (bool, error) {
	matchedInclude, err := matchAny(g.Include, value)
	if err != nil {
		return false, fmt.Errorf("include: %w", err)
	}
	matchedExclude, err := matchAny(g.Exclude, value)
	if err != nil {
		return false, fmt.Errorf("exclude: %w", err)
	}

	included := len(g.Include) == 0 || matchedInclude
	excluded := len(g.Exclude) > 0 && matchedExclude

	return included && !excluded, nil
}

// Validate checks that every pattern in both lists compiles. Meant to
// be called at configuration-load time so that malformed patterns fail
// the load instead of failing the first filtered query.
func (g *Glob) Validate() error {
	for _, pattern := range g.Include {
		if _, err := matchPattern(pattern, ""); err != nil {
			return fmt.Errorf("include: %w", err)
		}
	}
	for _, pattern := range g.Exclude {
		if _, err := matchPattern(pattern, ""); err != nil {
			return fmt.Errorf("exclude: %w", err)
		}
	}
	return nil
}

// matchAny reports whether value matches at least one of the patterns.
func matchAny(patterns []string, value string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := matchPattern(pattern, value)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// matchPattern matches a glob pattern against a value, supporting
// matching across separator characters.
// Uses gobwas/glob which allows * to match across any characters,
// unlike filepath.Match.
func matchPattern(pattern, value string) (bool, error) {
	// filepath.Match is used for validation only; it rejects malformed
	// patterns such as unterminated character classes.
	if _, err := filepath.Match(pattern, "probe"); err != nil {
		return false, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	compiled, err := glob.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	return compiled.Match(value), nil
}
