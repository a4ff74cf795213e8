// Package scorer computes the numeric sort keys used to order tokens inside
// a group bucket.
package scorer

import (
	"regexp"
	"strings"
)

// Sentinel is returned when a base name matches no order hint or when no
// configured variant of a token appears in the priority list. It is strictly
// greater than any real index, so unranked entries sort after ranked ones and
// then fall back to original input order.
const Sentinel = 1 << 20

// orderHints ranks base-name shapes within a bucket. The table is fixed and
// position is the score: container before display keywords, padding before
// margin, and so on down to accessibility.
var orderHints = []*regexp.Regexp{
	regexp.MustCompile(`^container$`),
	regexp.MustCompile(`^(flex|grid|block|inline|inline-block|inline-flex|inline-grid|hidden|contents|flow-root|table)$`),
	regexp.MustCompile(`^-?p(x|y|t|r|b|l|s|e)?-`),
	regexp.MustCompile(`^-?m(x|y|t|r|b|l|s|e)?-`),
	regexp.MustCompile(`^-?space-(x|y)-`),
	regexp.MustCompile(`^(w|h|min-w|min-h|max-w|max-h|size)-`),
	regexp.MustCompile(`^(font-|text-|leading-|tracking-)`),
	regexp.MustCompile(`^(bg-|from-|via-|to-)`),
	regexp.MustCompile(`^(border|rounded|divide|outline)`),
	regexp.MustCompile(`^(transform|transition|filter|blur|backdrop-)|^-?(scale|rotate|translate|skew)-`),
	regexp.MustCompile(`^(cursor-|select-|pointer-events-|resize)`),
	regexp.MustCompile(`^(sr-only|not-sr-only)$`),
}

// BaseScore returns the index of the first order hint matching base, or
// Sentinel when none match.
func BaseScore(base string) int {
	for i, re := range orderHints {
		if re.MatchString(base) {
			return i
		}
	}
	return Sentinel
}

// VariantScore returns the priority of a token's variants: the index in the
// priority list of the first of the token's own variants (in the order they
// were written) that appears there. Tokens with no variants, an empty
// priority list, or no listed variant score Sentinel. Lookup is
// case-insensitive, matching how variants are recognized in the first place.
func VariantScore(variants []string, priority []string) int {
	if len(variants) == 0 || len(priority) == 0 {
		return Sentinel
	}
	for _, v := range variants {
		for i, p := range priority {
			if strings.EqualFold(v, p) {
				return i
			}
		}
	}
	return Sentinel
}
