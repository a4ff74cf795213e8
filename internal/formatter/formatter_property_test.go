package formatter

import (
	"sort"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"tailsort/internal/config"
	"tailsort/internal/tokenizer"
)

func genToken() gopter.Gen {
	return gen.OneConstOf(
		"flex", "grid", "items-center", "justify-between", "container",
		"p-4", "px-2", "-mt-1", "space-x-2",
		"w-full", "h-64", "max-w-lg",
		"text-sm", "font-bold", "truncate",
		"text-red-500", "bg-blue-500", "from-purple-400", "shadow-lg",
		"border", "rounded-lg", "divide-y-2",
		"transition", "animate-spin", "scale-95",
		"cursor-pointer", "select-none",
		"sr-only",
		"prose", "btn-primary",
		"hover:bg-blue-500", "sm:p-2", "md:hover:underline", "dark:text-white",
		"bg-[color:var(--x)]", "grid-cols-[1fr 2fr]", "[&>*]:p-2",
	)
}

func genClassString() gopter.Gen {
	return gen.SliceOf(genToken()).Map(func(tokens []string) string {
		return strings.Join(tokens, " ")
	})
}

func genOptions() gopter.Gen {
	return gen.OneConstOf(
		config.FormatOptions{},
		config.DefaultFormatOptions(),
		config.FormatOptions{Tailwind: config.TailwindOptions{Variants: []string{"sm", "md", "lg", "hover", "focus"}}},
		config.FormatOptions{Tailwind: config.TailwindOptions{CustomUtilities: []string{"btn"}}},
		config.FormatOptions{Tailwind: config.TailwindOptions{Prefix: "tw-"}},
	)
}

// Applying Format to its own output yields the same output, for any input and
// configuration.
func TestFormatIdempotenceProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("format(format(s)) == format(s)", prop.ForAll(
		func(input string, opts config.FormatOptions) bool {
			once := Format(input, opts)
			twice := Format(once, opts)
			return once == twice
		},
		genClassString(),
		genOptions(),
	))

	properties.TestingRun(t)
}

// Repeated calls with identical input and configuration are byte-identical.
func TestFormatDeterminismProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("repeated calls agree", prop.ForAll(
		func(input string, opts config.FormatOptions) bool {
			return Format(input, opts) == Format(input, opts)
		},
		genClassString(),
		genOptions(),
	))

	properties.TestingRun(t)
}

// With a group order covering every populated group, formatting only reorders
// tokens: the multiset of tokens is conserved.
func TestFormatTokenConservationProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("token multiset survives formatting", prop.ForAll(
		func(input string) bool {
			before := tokenizer.Tokenize(input)
			after := tokenizer.Tokenize(Format(input, config.FormatOptions{}))
			if len(before) != len(after) {
				return false
			}
			sort.Strings(before)
			sort.Strings(after)
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}
			return true
		},
		genClassString(),
	))

	properties.TestingRun(t)
}

// Grouped output joined with spaces equals flat output.
func TestFormatGroupedMatchesFlatProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("chunks join to the flat string", prop.ForAll(
		func(input string, opts config.FormatOptions) bool {
			return strings.Join(FormatGrouped(input, opts), " ") == Format(input, opts)
		},
		genClassString(),
		genOptions(),
	))

	properties.TestingRun(t)
}

// Categorize returns an entry for every key of the effective group order plus
// misc, and buckets every token somewhere.
func TestCategorizeCoverageProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("all groups present, all tokens bucketed", prop.ForAll(
		func(input string, opts config.FormatOptions) bool {
			groups := Categorize(input, opts)
			for _, g := range opts.EffectiveGroupOrder() {
				if _, ok := groups[g]; !ok {
					return false
				}
			}
			if _, ok := groups["misc"]; !ok {
				return false
			}
			total := 0
			for _, tokens := range groups {
				total += len(tokens)
			}
			return total == len(tokenizer.Tokenize(input))
		},
		genClassString(),
		genOptions(),
	))

	properties.TestingRun(t)
}
