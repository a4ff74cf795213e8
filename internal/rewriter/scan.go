package rewriter

import (
	"errors"
	"strings"
)

// MergeHelpers are the recognized class-merging helper names, matched as a
// direct callee or as the accessed member of a callee.
var MergeHelpers = []string{"classnames", "classNames", "clsx", "cn", "cx", "twMerge"}

// DefaultHelper is the helper imported when merge mode needs one and none is
// in scope.
const DefaultHelper = "classnames"

// DefaultHelperModule is the module specifier for the synthesized import.
const DefaultHelperModule = "classnames"

var errUnterminated = errors.New("unterminated literal or comment")

// stringLit is a single quoted string in the source. Offsets include the
// quotes; value is the raw text between them.
type stringLit struct {
	start int
	end   int
	quote byte
	value string
}

// callArg is one top-level argument of a merge-helper call. lit is non-nil
// when the argument is exactly one string literal.
type callArg struct {
	start int
	end   int
	lit   *stringLit
}

// site is one rewritable location: a class attribute value or a merge-helper
// call expression.
type site struct {
	attr   *stringLit // attribute value literal, nil for call sites
	braced bool       // attribute value was wrapped in a JSX expression container
	opens  int        // offset of '{' when braced
	closes int        // offset of '}' when braced
	helper string     // callee name for call sites
	args   []callArg  // call arguments, in source order
	lparen int        // offset of '(' for call sites
	rparen int        // offset of ')' for call sites
}

// srcScanner walks JS/TS source text, honoring comments, string literals, and
// template literals, and collects rewrite sites.
type srcScanner struct {
	src string
	pos int
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// scanSites runs the scanner over src and returns every class attribute and
// merge-helper call site, in source order.
func scanSites(src string) ([]site, error) {
	s := &srcScanner{src: src}
	var sites []site

	for s.pos < len(s.src) {
		b := s.src[s.pos]
		switch {
		case b == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case b == '/' && s.peek(1) == '*':
			if err := s.skipBlockComment(); err != nil {
				return nil, err
			}
		case b == '\'' || b == '"':
			if err := s.skipStringLike(); err != nil {
				return nil, err
			}
		case b == '`':
			if err := s.skipTemplate(); err != nil {
				return nil, err
			}
		case isIdentByte(b) && !isDigit(b):
			start := s.pos
			name := s.scanIdent()
			if name == "className" || name == "class" {
				if st, ok, err := s.tryAttrSite(); err != nil {
					return nil, err
				} else if ok {
					sites = append(sites, st)
				}
			} else if isMergeHelper(name) && !s.memberAccessFollows() && !precededByDotlessIdent(src, start) {
				if st, ok, err := s.tryCallSite(name); err != nil {
					return nil, err
				} else if ok {
					sites = append(sites, st)
				}
			}
		default:
			s.pos++
		}
	}

	return sites, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isMergeHelper(name string) bool {
	for _, h := range MergeHelpers {
		if h == name {
			return true
		}
	}
	return false
}

// precededByDotlessIdent rejects matches that are the tail of a longer
// identifier, e.g. the cn in myFn is never a helper. A preceding '.' is fine:
// that is member access on the helper.
func precededByDotlessIdent(src string, start int) bool {
	return start > 0 && isIdentByte(src[start-1])
}

func (s *srcScanner) peek(ahead int) byte {
	if s.pos+ahead >= len(s.src) {
		return 0
	}
	return s.src[s.pos+ahead]
}

func (s *srcScanner) skipLineComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
}

func (s *srcScanner) skipBlockComment() error {
	s.pos += 2
	for s.pos < len(s.src) {
		if s.src[s.pos] == '*' && s.peek(1) == '/' {
			s.pos += 2
			return nil
		}
		s.pos++
	}
	return errUnterminated
}

// skipStringLike consumes a quoted literal in a position where the scanner
// is only skipping, not extracting. Apostrophes in JSX text content (Don't,
// it's) are not string openers: a single quote directly after an identifier
// character cannot start a literal, and a single-quote run that never closes
// before the end of its line is plain text, so both are consumed as text
// instead of failing the file. Double quotes stay strict.
func (s *srcScanner) skipStringLike() error {
	quote := s.src[s.pos]
	if quote == '\'' && s.pos > 0 && isIdentByte(s.src[s.pos-1]) {
		s.pos++
		return nil
	}
	save := s.pos
	if _, err := s.scanString(); err != nil {
		if quote == '\'' {
			s.pos = save + 1
			return nil
		}
		return err
	}
	return nil
}

// scanString consumes a quoted literal starting at s.pos and returns it.
func (s *srcScanner) scanString() (stringLit, error) {
	quote := s.src[s.pos]
	start := s.pos
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case quote:
			s.pos++
			return stringLit{
				start: start,
				end:   s.pos,
				quote: quote,
				value: s.src[start+1 : s.pos-1],
			}, nil
		case '\n':
			return stringLit{}, errUnterminated
		}
		s.pos++
	}
	return stringLit{}, errUnterminated
}

// skipTemplate consumes a template literal, including nested ${} expressions.
// Class values inside templates are not rewritten.
func (s *srcScanner) skipTemplate() error {
	s.pos++
	for s.pos < len(s.src) {
		switch {
		case s.src[s.pos] == '\\':
			s.pos += 2
		case s.src[s.pos] == '`':
			s.pos++
			return nil
		case s.src[s.pos] == '$' && s.peek(1) == '{':
			s.pos += 2
			depth := 1
			for s.pos < len(s.src) && depth > 0 {
				switch s.src[s.pos] {
				case '{':
					depth++
				case '}':
					depth--
				case '\'', '"':
					if err := s.skipStringLike(); err != nil {
						return err
					}
					continue
				case '`':
					if err := s.skipTemplate(); err != nil {
						return err
					}
					continue
				}
				s.pos++
			}
			if depth > 0 {
				return errUnterminated
			}
		default:
			s.pos++
		}
	}
	return errUnterminated
}

func (s *srcScanner) scanIdent() string {
	start := s.pos
	for s.pos < len(s.src) && isIdentByte(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *srcScanner) skipSpaces() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

// memberAccessFollows reports whether the scanner sits on a '.', in which
// case the just-scanned identifier is an object being accessed, not the
// callee itself.
func (s *srcScanner) memberAccessFollows() bool {
	save := s.pos
	s.skipSpaces()
	follows := s.pos < len(s.src) && s.src[s.pos] == '.'
	s.pos = save
	return follows
}

// tryAttrSite matches ="..." or ={"..."} after a class attribute name. The
// scanner position is left after whatever was consumed.
func (s *srcScanner) tryAttrSite() (site, bool, error) {
	save := s.pos
	s.skipSpaces()
	if s.pos >= len(s.src) || s.src[s.pos] != '=' {
		s.pos = save
		return site{}, false, nil
	}
	s.pos++
	s.skipSpaces()
	if s.pos >= len(s.src) {
		s.pos = save
		return site{}, false, nil
	}

	switch s.src[s.pos] {
	case '\'', '"':
		lit, err := s.scanString()
		if err != nil {
			return site{}, false, err
		}
		return site{attr: &lit}, true, nil
	case '{':
		opens := s.pos
		s.pos++
		s.skipSpaces()
		if s.pos >= len(s.src) || (s.src[s.pos] != '\'' && s.src[s.pos] != '"') {
			s.pos = save
			return site{}, false, nil
		}
		lit, err := s.scanString()
		if err != nil {
			return site{}, false, err
		}
		s.skipSpaces()
		if s.pos >= len(s.src) || s.src[s.pos] != '}' {
			// Not a single-expression string literal; leave it alone.
			s.pos = save + 1
			return site{}, false, nil
		}
		closes := s.pos
		s.pos++
		return site{attr: &lit, braced: true, opens: opens, closes: closes}, true, nil
	}

	s.pos = save
	return site{}, false, nil
}

// tryCallSite matches an argument list after a recognized helper name and
// splits it into top-level arguments.
func (s *srcScanner) tryCallSite(helper string) (site, bool, error) {
	save := s.pos
	s.skipSpaces()
	if s.pos >= len(s.src) || s.src[s.pos] != '(' {
		s.pos = save
		return site{}, false, nil
	}

	st := site{helper: helper, lparen: s.pos}
	s.pos++

	depth := 0 // nesting inside the current argument
	argStart := s.pos
	flush := func(end int) {
		text := strings.TrimSpace(s.src[argStart:end])
		if text == "" {
			return
		}
		arg := callArg{start: argStart, end: end}
		if lit, ok := wholeStringLit(s.src, argStart, end); ok {
			arg.lit = &lit
		}
		st.args = append(st.args, arg)
	}

	for s.pos < len(s.src) {
		b := s.src[s.pos]
		switch {
		case b == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case b == '/' && s.peek(1) == '*':
			if err := s.skipBlockComment(); err != nil {
				return site{}, false, err
			}
		case b == '\'' || b == '"':
			if err := s.skipStringLike(); err != nil {
				return site{}, false, err
			}
		case b == '`':
			if err := s.skipTemplate(); err != nil {
				return site{}, false, err
			}
		case b == '(' || b == '[' || b == '{':
			depth++
			s.pos++
		case b == ']' || b == '}':
			depth--
			s.pos++
		case b == ')':
			if depth == 0 {
				flush(s.pos)
				st.rparen = s.pos
				s.pos++
				return st, true, nil
			}
			depth--
			s.pos++
		case b == ',' && depth == 0:
			flush(s.pos)
			s.pos++
			s.skipSpaces()
			argStart = s.pos
		default:
			s.pos++
		}
	}

	return site{}, false, errUnterminated
}

// wholeStringLit reports whether src[start:end] trims to exactly one string
// literal and returns it with absolute offsets.
func wholeStringLit(src string, start, end int) (stringLit, bool) {
	segment := src[start:end]
	trimmed := strings.TrimSpace(segment)
	if len(trimmed) < 2 {
		return stringLit{}, false
	}
	quote := trimmed[0]
	if quote != '\'' && quote != '"' {
		return stringLit{}, false
	}
	if trimmed[len(trimmed)-1] != quote {
		return stringLit{}, false
	}
	inner := trimmed[1 : len(trimmed)-1]
	// Reject anything that is more than the one literal, e.g. "a" + "b".
	if strings.IndexByte(inner, quote) >= 0 || strings.IndexByte(inner, '\\') >= 0 {
		return stringLit{}, false
	}
	offset := start + strings.IndexByte(segment, quote)
	return stringLit{
		start: offset,
		end:   offset + len(trimmed),
		quote: quote,
		value: inner,
	}, true
}
