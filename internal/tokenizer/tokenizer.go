package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
)

// SpaceClass is a regexp character class body for whitespace as ECMAScript defines
// it: ASCII whitespace, vertical tab, every Unicode separator and the BOM.
// Go's \s alone misses non-breaking spaces.
const SpaceClass = `\s\v\p{Z}\x{FEFF}`

// delimiterRegex matches runs of the characters that separate words in court
// names, addresses and "City, ST" locations: whitespace, comma, slash and hyphen.
// Periods and apostrophes are not delimiters.
var delimiterRegex = regexp.MustCompile(`[` + SpaceClass + `,/-]+`)

// IsSpace reports whether r belongs to SpaceClass.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

// TrimSpace removes leading and trailing SpaceClass runes.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// SplitTokens splits text on whitespace, comma, slash and hyphen.
// Case is preserved; empty fragments are dropped.
func SplitTokens(text string) []string {
	split := delimiterRegex.Split(text, -1)

	tokens := make([]string, 0, len(split)) // Initialize as empty slice, not nil
	for _, s := range split {
		if s != "" {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// AnyTokenHasPrefix reports whether text starts with prefix or any of its
// tokens (see SplitTokens) does.
func AnyTokenHasPrefix(text, prefix string) bool {
	if strings.HasPrefix(text, prefix) {
		return true
	}
	for _, token := range SplitTokens(text) {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}
