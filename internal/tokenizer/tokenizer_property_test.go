package tokenizer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genPlainToken generates bracket-free class-like tokens.
func genPlainToken() gopter.Gen {
	return gen.OneConstOf(
		"flex", "grid", "p-4", "m-2", "text-sm", "text-red-500",
		"hover:bg-blue-500", "sm:p-2", "rounded-lg", "w-full", "sr-only",
	)
}

// genBracketToken generates tokens with arbitrary-value segments, including
// ones with whitespace inside the brackets.
func genBracketToken() gopter.Gen {
	return gen.OneConstOf(
		"bg-[color:var(--x)]",
		"w-[calc(100% - 2rem)]",
		"grid-cols-[1fr 2fr]",
		"[&>*]:p-2",
		"top-[117px]",
	)
}

func genToken() gopter.Gen {
	return gen.Weighted([]gen.WeightedGen{
		{Weight: 3, Gen: genPlainToken()},
		{Weight: 1, Gen: genBracketToken()},
	})
}

func genWhitespace() gopter.Gen {
	return gen.OneConstOf(" ", "  ", "\t", " \n ")
}

// genClassList joins generated tokens with generated whitespace runs.
func genClassList() gopter.Gen {
	return gen.SliceOf(genToken()).FlatMap(func(v interface{}) gopter.Gen {
		tokens := v.([]string)
		return genWhitespace().Map(func(ws string) classList {
			return classList{tokens: tokens, raw: strings.Join(tokens, ws)}
		})
	}, reflect.TypeOf(classList{}))
}

type classList struct {
	tokens []string
	raw    string
}

// Tokenization is lossless and order-preserving: the produced tokens are
// exactly the tokens the input was built from.
func TestTokenizeConservationProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("tokens survive round trip in order", prop.ForAll(
		func(cl classList) bool {
			got := Tokenize(cl.raw)
			if len(got) != len(cl.tokens) {
				return false
			}
			for i, tok := range got {
				if tok != cl.tokens[i] {
					return false
				}
			}
			return true
		},
		genClassList(),
	))

	properties.TestingRun(t)
}

// No token boundary falls inside balanced brackets: every produced token has
// balanced bracket depth, so a bracketed segment is never split.
func TestTokenizeBracketAtomicityProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every token has non-negative final depth", prop.ForAll(
		func(cl classList) bool {
			for _, tok := range Tokenize(cl.raw) {
				depth := 0
				for _, r := range tok {
					switch r {
					case '[':
						depth++
					case ']':
						if depth > 0 {
							depth--
						}
					}
				}
				if depth != 0 {
					return false
				}
			}
			return true
		},
		genClassList(),
	))

	properties.TestingRun(t)
}
