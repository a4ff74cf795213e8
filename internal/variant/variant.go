// Package variant strips leading variant prefixes from class tokens.
package variant

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultVocabulary lists the named variants recognized when a configuration
// supplies none. Matching is case-insensitive and anchored at the start of
// the remaining token.
var DefaultVocabulary = []string{
	"sm", "md", "lg", "xl", "2xl",
	"dark",
	"motion-safe", "motion-reduce",
	"hover", "focus", "focus-within", "focus-visible", "active", "visited", "target",
	"disabled", "enabled", "checked", "indeterminate", "default",
	"required", "valid", "invalid", "in-range", "out-of-range",
	"placeholder-shown", "autofill", "read-only",
	"first", "last", "odd", "even", "only",
	"first-of-type", "last-of-type", "only-of-type",
	"empty", "open",
	"before", "after", "first-letter", "first-line",
	"marker", "selection", "file", "backdrop", "placeholder",
	"group-hover", "group-focus", "peer-hover", "peer-focus", "peer-checked",
	"print", "rtl", "ltr",
}

// Splitter recognizes and strips variant segments from the front of a token.
// It is immutable once built and safe for concurrent use.
type Splitter struct {
	re *regexp.Regexp
}

// NewSplitter compiles a Splitter for the given variant vocabulary. An empty
// vocabulary falls back to DefaultVocabulary. Longer names are tried first so
// that focus-within is never consumed as focus.
func NewSplitter(vocabulary []string) *Splitter {
	if len(vocabulary) == 0 {
		vocabulary = DefaultVocabulary
	}

	sorted := make([]string, 0, len(vocabulary))
	for _, v := range vocabulary {
		if v != "" {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		sorted = append(sorted, DefaultVocabulary...)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	quoted := make([]string, len(sorted))
	for i, v := range sorted {
		quoted[i] = regexp.QuoteMeta(v)
	}

	// Either a named variant from the vocabulary or a bracketed arbitrary
	// variant, in both cases terminated by a colon.
	expr := `^((?i:` + strings.Join(quoted, "|") + `)|\[[^\]]*\]):`
	return &Splitter{re: regexp.MustCompile(expr)}
}

// Split repeatedly strips leading variant segments from token and returns the
// remaining base name plus the stripped variants in left-to-right order. A
// token with no variant prefix comes back unchanged with a nil variant list.
func (s *Splitter) Split(token string) (base string, variants []string) {
	base = token
	for {
		m := s.re.FindStringSubmatch(base)
		if m == nil {
			return base, variants
		}
		variants = append(variants, m[1])
		base = base[len(m[0]):]
	}
}
