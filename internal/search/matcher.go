package search

import (
	"strings"
	"unicode/utf8"

	"github.com/gcbaptista/court-finder/internal/tokenizer"
)

// shortQueryMaxLen is the longest query (in runes) that uses token-prefix matching
// instead of substring containment.
const shortQueryMaxLen = 3

// Matcher reports whether a lowercased candidate text matches a query.
type Matcher func(text string) bool

// NewMatcher builds the predicate for an already normalized (trimmed, lowercased) query.
//
// An empty query matches everything and an empty text matches nothing. Short queries
// (1 to 3 runes) match when the text, or any of its tokens, starts with the query.
// Longer queries match anywhere in the text.
func NewMatcher(q string) Matcher {
	if q == "" {
		return func(string) bool { return true }
	}

	if utf8.RuneCountInString(q) > shortQueryMaxLen {
		return func(text string) bool {
			return text != "" && strings.Contains(text, q)
		}
	}

	return func(text string) bool {
		return text != "" && tokenizer.AnyTokenHasPrefix(text, q)
	}
}
