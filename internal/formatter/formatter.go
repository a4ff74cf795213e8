// Package formatter assembles the tailsort pipeline: tokenize, split
// variants, classify, score, and reorder class tokens into grouped output.
package formatter

import (
	"sort"
	"strings"

	"tailsort/internal/classifier"
	"tailsort/internal/config"
	"tailsort/internal/scorer"
	"tailsort/internal/tokenizer"
	"tailsort/internal/variant"
)

// ParsedToken is one class token with everything the sorter needs to place it.
type ParsedToken struct {
	Token         string
	Base          string
	Variants      []string
	Group         classifier.GroupKey
	OriginalIndex int
	BaseScore     int
	VariantScore  int
}

// parse runs tokenization, variant splitting, classification, and scoring
// over input. Each invocation builds its own splitter and classifier from the
// options, so calls never share state.
func parse(input string, opts config.FormatOptions) []ParsedToken {
	splitter := variant.NewSplitter(opts.Tailwind.Variants)
	cls := classifier.New(opts.Tailwind.Prefix, opts.Tailwind.CustomUtilities)

	tokens := tokenizer.Tokenize(input)
	parsed := make([]ParsedToken, 0, len(tokens))
	for i, token := range tokens {
		base, variants := splitter.Split(token)
		parsed = append(parsed, ParsedToken{
			Token:         token,
			Base:          base,
			Variants:      variants,
			Group:         cls.Classify(base),
			OriginalIndex: i,
			BaseScore:     scorer.BaseScore(base),
			VariantScore:  scorer.VariantScore(variants, opts.Tailwind.Variants),
		})
	}
	return parsed
}

// sortBucket orders one group bucket with the explicit composite comparator:
// variant score, then base score, then original index. The final key is
// unique per token, so the ordering is total and does not lean on sort
// stability.
func sortBucket(bucket []ParsedToken) {
	sort.Slice(bucket, func(i, j int) bool {
		a, b := bucket[i], bucket[j]
		if a.VariantScore != b.VariantScore {
			return a.VariantScore < b.VariantScore
		}
		if a.BaseScore != b.BaseScore {
			return a.BaseScore < b.BaseScore
		}
		return a.OriginalIndex < b.OriginalIndex
	})
}

// orderedBuckets buckets parsed tokens by group and returns the sorted token
// strings for each group in the effective group order. Groups absent from the
// order are not emitted; a configured order that omits misc therefore filters
// misc tokens out.
func orderedBuckets(input string, opts config.FormatOptions) [][]string {
	buckets := make(map[classifier.GroupKey][]ParsedToken)
	for _, pt := range parse(input, opts) {
		buckets[pt.Group] = append(buckets[pt.Group], pt)
	}

	order := opts.EffectiveGroupOrder()
	out := make([][]string, 0, len(order))
	for _, group := range order {
		bucket := buckets[group]
		if len(bucket) == 0 {
			out = append(out, nil)
			continue
		}
		sortBucket(bucket)
		tokens := make([]string, len(bucket))
		for i, pt := range bucket {
			tokens[i] = pt.Token
		}
		out = append(out, tokens)
	}
	return out
}

// Format reorders the class tokens of input into canonical grouped order and
// returns them as one space-joined string. It is idempotent and never
// produces doubled or leading/trailing whitespace.
func Format(input string, opts config.FormatOptions) string {
	var all []string
	for _, tokens := range orderedBuckets(input, opts) {
		all = append(all, tokens...)
	}
	return strings.Join(all, " ")
}

// FormatGrouped reorders the class tokens of input and returns one
// space-joined chunk per non-empty group, in group order.
func FormatGrouped(input string, opts config.FormatOptions) []string {
	var chunks []string
	for _, tokens := range orderedBuckets(input, opts) {
		if len(tokens) == 0 {
			continue
		}
		chunks = append(chunks, strings.Join(tokens, " "))
	}
	return chunks
}

// Categorize buckets the class tokens of input by group without sorting:
// tokens stay in original relative order inside each bucket. The result has
// an entry for every key in the effective group order plus misc, each
// possibly empty.
func Categorize(input string, opts config.FormatOptions) map[classifier.GroupKey][]string {
	groups := make(map[classifier.GroupKey][]string)
	for _, group := range opts.EffectiveGroupOrder() {
		groups[group] = []string{}
	}
	if _, ok := groups[classifier.Misc]; !ok {
		groups[classifier.Misc] = []string{}
	}

	for _, pt := range parse(input, opts) {
		groups[pt.Group] = append(groups[pt.Group], pt.Token)
	}
	return groups
}
