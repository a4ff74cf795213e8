// Package tokenizer splits raw class-list strings into class tokens.
package tokenizer

import "unicode"

// Tokenize splits input into class tokens on whitespace runs at bracket depth
// zero. A '[' increases depth and a matching ']' decreases it (never below
// zero), so whitespace inside an arbitrary-value segment never ends a token.
// An unterminated '[' is not an error: the rest of the input becomes one
// token. Empty tokens from repeated whitespace are discarded.
func Tokenize(input string) []string {
	var tokens []string
	depth := 0
	start := -1

	for i, r := range input {
		switch {
		case r == '[':
			depth++
			if start < 0 {
				start = i
			}
		case r == ']':
			if depth > 0 {
				depth--
			}
			if start < 0 {
				start = i
			}
		case depth == 0 && unicode.IsSpace(r):
			if start >= 0 {
				tokens = append(tokens, input[start:i])
				start = -1
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if start >= 0 {
		tokens = append(tokens, input[start:])
	}
	return tokens
}
