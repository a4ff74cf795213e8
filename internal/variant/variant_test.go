package variant

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	s := NewSplitter(nil)

	tests := []struct {
		name         string
		token        string
		wantBase     string
		wantVariants []string
	}{
		{"no variants", "p-4", "p-4", nil},
		{"single variant", "hover:bg-blue-500", "bg-blue-500", []string{"hover"}},
		{"stacked variants keep order", "md:hover:bg-blue-500", "bg-blue-500", []string{"md", "hover"}},
		{"case-insensitive named variant", "Hover:underline", "underline", []string{"Hover"}},
		{"arbitrary variant", "[&>*]:p-2", "p-2", []string{"[&>*]"}},
		{"arbitrary then named", "[&:nth-child(3)]:hover:underline", "underline", []string{"[&:nth-child(3)]", "hover"}},
		{"longest name wins", "focus-within:ring-2", "ring-2", []string{"focus-within"}},
		{"unknown word with colon stays in base", "foo:bar", "foo:bar", nil},
		{"colon inside bracket value is not a variant", "bg-[color:var(--x)]", "bg-[color:var(--x)]", nil},
		{"variant-only token", "hover:", "", []string{"hover"}},
		{"vocabulary word without colon is base", "hover", "hover", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, variants := s.Split(tt.token)
			if base != tt.wantBase {
				t.Errorf("Split(%q) base = %q, want %q", tt.token, base, tt.wantBase)
			}
			if !reflect.DeepEqual(variants, tt.wantVariants) {
				t.Errorf("Split(%q) variants = %v, want %v", tt.token, variants, tt.wantVariants)
			}
		})
	}
}

func TestSplitWithConfiguredVocabulary(t *testing.T) {
	s := NewSplitter([]string{"sm", "md", "hover"})

	base, variants := s.Split("sm:hover:p-2")
	if base != "p-2" {
		t.Errorf("base = %q, want %q", base, "p-2")
	}
	if !reflect.DeepEqual(variants, []string{"sm", "hover"}) {
		t.Errorf("variants = %v, want [sm hover]", variants)
	}

	// dark is not in the configured vocabulary, so it stays in the base.
	base, variants = s.Split("dark:p-2")
	if base != "dark:p-2" || variants != nil {
		t.Errorf("Split(dark:p-2) = %q, %v; want unsplit", base, variants)
	}
}

func TestSplitterIgnoresEmptyVocabularyEntries(t *testing.T) {
	s := NewSplitter([]string{"", ""})

	// All-empty vocabularies fall back to the default table.
	base, variants := s.Split("hover:underline")
	if base != "underline" || !reflect.DeepEqual(variants, []string{"hover"}) {
		t.Errorf("Split(hover:underline) = %q, %v; want underline, [hover]", base, variants)
	}
}
