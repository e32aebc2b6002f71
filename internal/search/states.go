package search

import (
	"regexp"
	"strings"

	"github.com/gcbaptista/court-finder/internal/tokenizer"
)

// stateNames maps US postal abbreviations (50 states and DC) to lowercase full names.
var stateNames = map[string]string{
	"AL": "alabama", "AK": "alaska", "AZ": "arizona", "AR": "arkansas", "CA": "california",
	"CO": "colorado", "CT": "connecticut", "DE": "delaware", "FL": "florida", "GA": "georgia",
	"HI": "hawaii", "IA": "iowa", "ID": "idaho", "IL": "illinois", "IN": "indiana",
	"KS": "kansas", "KY": "kentucky", "LA": "louisiana", "MA": "massachusetts", "MD": "maryland",
	"ME": "maine", "MI": "michigan", "MN": "minnesota", "MO": "missouri", "MS": "mississippi",
	"MT": "montana", "NC": "north carolina", "ND": "north dakota", "NE": "nebraska",
	"NH": "new hampshire", "NJ": "new jersey", "NM": "new mexico", "NV": "nevada",
	"NY": "new york", "OH": "ohio", "OK": "oklahoma", "OR": "oregon", "PA": "pennsylvania",
	"RI": "rhode island", "SC": "south carolina", "SD": "south dakota", "TN": "tennessee",
	"TX": "texas", "UT": "utah", "VA": "virginia", "VT": "vermont", "WA": "washington",
	"WI": "wisconsin", "WV": "west virginia", "WY": "wyoming", "DC": "district of columbia",
}

// trailingRegionRegex captures the region after the last comma of a "City, ST" string.
var trailingRegionRegex = regexp.MustCompile(
	`,[` + tokenizer.SpaceClass + `]*([A-Za-z.` + tokenizer.SpaceClass + `]{2,})$`)

// stateAbbrevRegex matches a two-letter uppercase postal abbreviation.
var stateAbbrevRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// FullStateFromLocation extracts the region of a "City, ST" location.
// Known two-letter abbreviations expand to the lowercase state name and unknown ones
// report false. Spelled-out regions come back lowercased as they are.
func FullStateFromLocation(location string) (string, bool) {
	if location == "" {
		return "", false
	}

	m := trailingRegionRegex.FindStringSubmatch(location)
	if m == nil {
		return "", false
	}

	token := tokenizer.TrimSpace(m[1])
	if stateAbbrevRegex.MatchString(token) {
		name, ok := stateNames[token]
		return name, ok
	}

	return strings.ToLower(token), true
}

// ExpandState adapts FullStateFromLocation to a FieldSpec Transform over the raw location.
func ExpandState[T any](raw string, _ T) string {
	name, _ := FullStateFromLocation(raw)
	return name
}
