// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tags assigns categorical labels to papers via keyword-pattern rules.
package tags

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Classifier is a stateless, deterministic multi-label categorizer.
type Classifier struct {
	rules []compiledRule
}

type compiledRule struct {
	tag      string
	patterns []*regexp.Regexp
}

// New compiles a rule table into a classifier. Patterns are matched
// case-insensitively against lowercased title+abstract text.
func New(rules []Rule) (*Classifier, error) {
	c := &Classifier{rules: make([]compiledRule, 0, len(rules))}
	for _, rule := range rules {
		cr := compiledRule{tag: rule.Tag, patterns: make([]*regexp.Regexp, 0, len(rule.Patterns))}
		for _, pat := range rule.Patterns {
			re, err := regexp.Compile(`(?i)` + pat)
			if err != nil {
				return nil, fmt.Errorf("compiling pattern %q for tag %q: %w", pat, rule.Tag, err)
			}
			cr.patterns = append(cr.patterns, re)
		}
		c.rules = append(c.rules, cr)
	}
	return c, nil
}

// Default returns a classifier built from DefaultRules.
func Default() *Classifier {
	c, err := New(DefaultRules)
	if err != nil {
		panic(err) // DefaultRules are compile-tested
	}
	return c
}

// LoadRules reads a rule table from a YAML file.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("rules file %s contains no rules", path)
	}
	return rules, nil
}

// Classify returns the deduplicated, lexicographically sorted tags whose
// rules match the title+abstract text. Each rule is evaluated independently;
// within a rule the first matching pattern assigns the tag.
func (c *Classifier) Classify(title, abstract string) []string {
	text := strings.ToLower(title + " " + abstract)

	tags := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	for _, rule := range c.rules {
		if _, ok := seen[rule.tag]; ok {
			continue
		}
		for _, re := range rule.patterns {
			if re.MatchString(text) {
				seen[rule.tag] = struct{}{}
				tags = append(tags, rule.tag)
				break
			}
		}
	}

	sort.Strings(tags)
	return tags
}
