// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relevance gates fetched papers against false positives from the
// broad arXiv search query.
package relevance

import (
	"fmt"
	"regexp"
)

// DefaultPatterns matches papers about the splatting technique itself.
// The search query also pulls in generic "3D Gaussian distribution" papers;
// none of these patterns match those, so they are rejected. Patterns are
// applied case-insensitively and any single match is sufficient.
var DefaultPatterns = []string{
	`gaussian[\s\-]+splat`,
	`\b[234]d[\s\-]?gs\b`,
	`\bsplatting\b`,
	`gaussian[\s\-]+surfel`,
	`gaussian[\s\-]+primitives?\b.{0,40}render`,
}

// Filter decides whether a paper belongs to the target corpus.
type Filter struct {
	patterns []*regexp.Regexp
}

// New compiles the given patterns into a filter.
func New(patterns []string) (*Filter, error) {
	f := &Filter{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for _, pat := range patterns {
		re, err := regexp.Compile(`(?i)` + pat)
		if err != nil {
			return nil, fmt.Errorf("compiling relevance pattern %q: %w", pat, err)
		}
		f.patterns = append(f.patterns, re)
	}
	return f, nil
}

// Default returns a filter built from DefaultPatterns.
func Default() *Filter {
	f, err := New(DefaultPatterns)
	if err != nil {
		panic(err) // DefaultPatterns are compile-tested
	}
	return f
}

// Relevant reports whether the combined title+abstract text is about the
// splatting technique. Absence of any pattern match rejects the paper.
func (f *Filter) Relevant(title, abstract string) bool {
	text := title + " " + abstract
	for _, re := range f.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
