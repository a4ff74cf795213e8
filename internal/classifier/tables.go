package classifier

import "regexp"

// groupRule pairs an anchored pattern with the group it selects. The table is
// evaluated top to bottom and the first match wins, so ordering between
// entries is load-bearing: the typography text-size shapes must precede the
// colors text-* shapes, and the layout break-(before|after|inside) shapes
// must not swallow the typography break-words forms.
type groupRule struct {
	pattern string
	group   GroupKey
}

var groupRules = []groupRule{
	// layout
	{`^container$`, Layout},
	{`^(flex|grid|block|inline|inline-block|inline-flex|inline-grid|inline-table|hidden|contents|flow-root|list-item|table|table-caption|table-cell|table-column|table-column-group|table-footer-group|table-header-group|table-row|table-row-group)$`, Layout},
	{`^(static|fixed|absolute|relative|sticky)$`, Layout},
	{`^(visible|invisible|collapse)$`, Layout},
	{`^(isolate|isolation-auto)$`, Layout},
	{`^(flex-|grid-|basis-|justify-|items-|content-|self-|place-|gap-|float-|clear-|object-|overflow-|overscroll-|box-|aspect-|columns-)`, Layout},
	{`^-?(inset|top|right|bottom|left|start|end|z|order|col|row)-`, Layout},
	{`^break-(before|after|inside)-`, Layout},

	// spacing
	{`^-?(p|m)(x|y|t|r|b|l|s|e)?-`, Spacing},
	{`^-?space-(x|y)-`, Spacing},

	// sizing
	{`^(w|h|min-w|min-h|max-w|max-h|size)-`, Sizing},

	// typography
	{`^text-(xs|sm|base|lg|xl|[2-9]xl|\[[^\]]*\])$`, Typography},
	{`^(font-|leading-|tracking-|align-|whitespace-|indent-|list-|decoration-|underline-offset-|line-clamp-|hyphens-)`, Typography},
	{`^(italic|not-italic|antialiased|subpixel-antialiased|truncate|uppercase|lowercase|capitalize|normal-case)$`, Typography},
	{`^(underline|overline|line-through|no-underline)$`, Typography},
	{`^break-(normal|words|all|keep)$`, Typography},

	// colors
	{`^(bg-|from-|via-|to-|text-|placeholder-|caret-|accent-|fill-|stroke-)`, Colors},
	{`^(ring-|shadow-|opacity-)`, Colors},
	{`^(ring|shadow)$`, Colors},

	// borders
	{`^(border|rounded|divide-|outline)`, Borders},

	// effects
	{`^(transition|duration-|ease-|delay-|animate-)`, Effects},
	{`^(transform|origin-)`, Effects},
	{`^-?(scale|rotate|translate|skew)-`, Effects},
	{`^(blur|brightness-|contrast-|drop-shadow|grayscale|hue-rotate-|invert|saturate-|sepia|backdrop-|filter|mix-blend-)`, Effects},
	{`^will-change-`, Effects},

	// interactivity
	{`^(cursor-|select-|pointer-events-|resize|scroll-|snap-|touch-|appearance-)`, Interactivity},

	// accessibility
	{`^(sr-only|not-sr-only)$`, Accessibility},
	{`^forced-color-adjust-`, Accessibility},
}

// defaultRules is the unprefixed compilation of groupRules, shared by every
// Classifier built without a prefix.
var defaultRules = func() []compiledRule {
	rules := make([]compiledRule, len(groupRules))
	for i, r := range groupRules {
		rules[i] = compiledRule{re: regexp.MustCompile(r.pattern), group: r.group}
	}
	return rules
}()
