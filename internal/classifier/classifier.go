// Package classifier maps base utility names to semantic groups for tailsort.
package classifier

import (
	"regexp"
	"strings"
)

// GroupKey identifies one of the ten semantic groups a utility belongs to.
type GroupKey string

const (
	Layout        GroupKey = "layout"
	Spacing       GroupKey = "spacing"
	Sizing        GroupKey = "sizing"
	Typography    GroupKey = "typography"
	Colors        GroupKey = "colors"
	Borders       GroupKey = "borders"
	Effects       GroupKey = "effects"
	Interactivity GroupKey = "interactivity"
	Accessibility GroupKey = "accessibility"
	// Misc is the total fallback: every base name that matches no rule
	// (and every configured custom utility) lands here.
	Misc GroupKey = "misc"
)

// AllGroups returns the ten group keys in canonical output order.
func AllGroups() []GroupKey {
	return []GroupKey{
		Layout,
		Spacing,
		Sizing,
		Typography,
		Colors,
		Borders,
		Effects,
		Interactivity,
		Accessibility,
		Misc,
	}
}

// Valid reports whether key is one of the ten known group keys.
func Valid(key GroupKey) bool {
	for _, g := range AllGroups() {
		if g == key {
			return true
		}
	}
	return false
}

// customMatcher matches a user-declared custom utility, either as a compiled
// pattern or, when the pattern does not compile, as a literal prefix.
type customMatcher struct {
	literal string
	re      *regexp.Regexp
}

func (m customMatcher) matches(base string) bool {
	if m.re != nil {
		return m.re.MatchString(base)
	}
	return strings.HasPrefix(base, m.literal)
}

// Classifier assigns a GroupKey to every base utility name. It is immutable
// once built and safe for concurrent use.
type Classifier struct {
	custom []customMatcher
	rules  []compiledRule
}

type compiledRule struct {
	re    *regexp.Regexp
	group GroupKey
}

// New builds a Classifier for the given utility prefix and custom-utility
// patterns. A non-empty prefix is injected immediately after the start anchor
// of every rule pattern, so classification matches prefixed class names
// as written.
func New(prefix string, customUtilities []string) *Classifier {
	c := &Classifier{}

	for _, pattern := range customUtilities {
		if pattern == "" {
			continue
		}
		expr := injectPrefix("^"+pattern, prefix)
		re, err := regexp.Compile(expr)
		if err != nil {
			// Not a valid pattern: fall back to literal prefix matching.
			c.custom = append(c.custom, customMatcher{literal: prefix + pattern})
			continue
		}
		c.custom = append(c.custom, customMatcher{re: re})
	}

	if prefix == "" {
		c.rules = defaultRules
		return c
	}

	c.rules = make([]compiledRule, len(groupRules))
	for i, r := range groupRules {
		c.rules[i] = compiledRule{
			re:    regexp.MustCompile(injectPrefix(r.pattern, prefix)),
			group: r.group,
		}
	}
	return c
}

// Classify returns the semantic group for a base utility name. Classification
// is total: custom utilities short-circuit into Misc, the rule table is
// evaluated in order with first match winning, and anything unmatched is Misc.
func (c *Classifier) Classify(base string) GroupKey {
	for _, m := range c.custom {
		if m.matches(base) {
			return Misc
		}
	}
	for _, r := range c.rules {
		if r.re.MatchString(base) {
			return r.group
		}
	}
	return Misc
}

// injectPrefix rewrites an anchored pattern so the escaped prefix literal sits
// immediately after the start anchor.
func injectPrefix(pattern, prefix string) string {
	if prefix == "" || !strings.HasPrefix(pattern, "^") {
		return pattern
	}
	return "^" + regexp.QuoteMeta(prefix) + pattern[1:]
}
