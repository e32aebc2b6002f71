// Package search implements the weighted multi-field text search used to rank courts,
// together with its helpers: state abbreviation expansion and keystroke debouncing.
package search

import (
	"sort"
	"strings"

	"github.com/gcbaptista/court-finder/internal/tokenizer"
)

// NormalizeQuery trims and lowercases a raw query.
func NormalizeQuery(query string) string {
	return strings.ToLower(tokenizer.TrimSpace(query))
}

// WeightedSearch returns the items matching query ordered from most to least relevant.
//
// Every field spec is evaluated for every item and the weights of the matching fields
// are summed. Items scoring zero are dropped; the rest are sorted by descending score,
// keeping input order among equal scores. The returned slice holds the input elements
// themselves. An empty query returns items unchanged.
func WeightedSearch[T any](items []T, fields []FieldSpec[T], query string) []T {
	q := NormalizeQuery(query)
	if q == "" {
		return items
	}

	match := NewMatcher(q)

	scored := make([]scoredItem[T], 0, len(items))
	for _, item := range items {
		var score float64
		for _, f := range fields {
			text := strings.ToLower(fieldText(f, item))
			if text != "" && match(text) {
				score += f.Weight
			}
		}
		if score > 0 {
			scored = append(scored, scoredItem[T]{item: item, score: score})
		}
	}

	// sort high -> low, ties keep input order
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	results := make([]T, len(scored))
	for i, s := range scored {
		results[i] = s.item
	}
	return results
}

// fieldText derives the text a field contributes for item. A missing accessor
// yields the empty string, which never matches.
func fieldText[T any](f FieldSpec[T], item T) string {
	var raw string
	if f.Get != nil {
		raw = f.Get(item)
	}
	if f.Transform != nil {
		return f.Transform(raw, item)
	}
	return raw
}
