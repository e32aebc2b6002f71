package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCourt struct {
	Name     string
	Location string
	Address  string
	Surface  string
}

func testFields() []FieldSpec[*testCourt] {
	return []FieldSpec[*testCourt]{
		{Name: "location", Weight: 5, Get: func(c *testCourt) string { return c.Location }},
		{Name: "location_state", Weight: 5, Get: func(c *testCourt) string { return c.Location }, Transform: ExpandState[*testCourt]},
		{Name: "name", Weight: 2, Get: func(c *testCourt) string { return c.Name }},
	}
}

func testCourts() []*testCourt {
	return []*testCourt{
		{Name: "Riverside Courts", Location: "Boston, MA", Address: "1 River St", Surface: "Clay"},
		{Name: "Cal Courts", Location: "Fresno, CA", Address: "2 Cal Ave", Surface: "Hard"},
	}
}

func TestWeightedSearch_EmptyQueryIsIdentity(t *testing.T) {
	courts := testCourts()

	for _, q := range []string{"", "   ", "\t\n"} {
		got := WeightedSearch(courts, testFields(), q)
		require.Len(t, got, len(courts))
		for i := range courts {
			assert.Same(t, courts[i], got[i], "query %q should keep element %d", q, i)
		}
	}
}

func TestWeightedSearch_ExpandedStateScenario(t *testing.T) {
	courts := testCourts()

	got := WeightedSearch(courts, testFields(), "mass")

	require.Len(t, got, 1)
	assert.Same(t, courts[0], got[0])

	score := scoreOf(testFields(), courts[0], "mass")
	assert.Equal(t, 5.0, score)
}

func TestWeightedSearch_ShortQueryTokenRule(t *testing.T) {
	fields := []FieldSpec[*testCourt]{
		{Name: "location", Weight: 1, Get: func(c *testCourt) string { return c.Location }},
	}
	la := &testCourt{Location: "Los Angeles, CA"}
	scarsdale := &testCourt{Location: "Scarsdale"}
	items := []*testCourt{la, scarsdale}

	got := WeightedSearch(items, fields, "ca")
	require.Len(t, got, 1)
	assert.Same(t, la, got[0])

	got = WeightedSearch(items, fields, "arsd")
	require.Len(t, got, 1)
	assert.Same(t, scarsdale, got[0])
}

func TestWeightedSearch_CaseInsensitive(t *testing.T) {
	courts := testCourts()

	upper := WeightedSearch(courts, testFields(), "BOSTON")
	lower := WeightedSearch(courts, testFields(), "boston")
	padded := WeightedSearch(courts, testFields(), "  Boston ")

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, padded)
	require.Len(t, lower, 1)
	assert.Same(t, courts[0], lower[0])
}

func TestWeightedSearch_RanksByScoreAndKeepsTiesStable(t *testing.T) {
	fields := []FieldSpec[*testCourt]{
		{Name: "name", Weight: 2, Get: func(c *testCourt) string { return c.Name }},
		{Name: "surface", Weight: 1, Get: func(c *testCourt) string { return c.Surface }},
	}
	a := &testCourt{Name: "Park Hill", Surface: "Hard"}        // 2
	b := &testCourt{Name: "Lakeview", Surface: "Park Surface"} // 1
	c := &testCourt{Name: "Park Avenue", Surface: "Park"}      // 3
	d := &testCourt{Name: "Park Place", Surface: "Clay"}       // 2
	e := &testCourt{Name: "Harbor", Surface: "Grass"}          // 0

	got := WeightedSearch([]*testCourt{a, b, c, d, e}, fields, "park")

	require.Len(t, got, 4)
	assert.Same(t, c, got[0])
	assert.Same(t, a, got[1])
	assert.Same(t, d, got[2])
	assert.Same(t, b, got[3])
}

func TestWeightedSearch_AllFieldsAccumulate(t *testing.T) {
	fields := []FieldSpec[*testCourt]{
		{Name: "name", Weight: 2, Get: func(c *testCourt) string { return c.Name }},
		{Name: "address", Weight: 4, Get: func(c *testCourt) string { return c.Address }},
	}
	both := &testCourt{Name: "Elm Courts", Address: "5 Elm St"}
	nameOnly := &testCourt{Name: "Elm Park", Address: "9 Oak Rd"}
	addressOnly := &testCourt{Name: "Oak Club", Address: "12 Elm Rd"}

	got := WeightedSearch([]*testCourt{nameOnly, addressOnly, both}, fields, "elm")

	assert.Equal(t, []*testCourt{both, addressOnly, nameOnly}, got)
	assert.Equal(t, 6.0, scoreOf(fields, both, "elm"))
}

func TestWeightedSearch_AbsentValuesDoNotMatch(t *testing.T) {
	fields := []FieldSpec[*testCourt]{
		{Name: "no accessor", Weight: 10},
		{Name: "empty", Weight: 10, Get: func(c *testCourt) string { return c.Address }},
		{Name: "state", Weight: 10, Get: func(c *testCourt) string { return c.Location }, Transform: ExpandState[*testCourt]},
	}
	items := []*testCourt{{Name: "Nowhere", Location: "Townsville"}}

	assert.Empty(t, WeightedSearch(items, fields, "a"))
	assert.Empty(t, WeightedSearch(items, fields, "townsville"))
}

func TestWeightedSearch_EmptyCollection(t *testing.T) {
	got := WeightedSearch([]*testCourt{}, testFields(), "boston")
	assert.Empty(t, got)

	got = WeightedSearch(nil, testFields(), "boston")
	assert.Empty(t, got)
}

func TestWeightedSearch_DoesNotMutateInput(t *testing.T) {
	courts := testCourts()
	before := append([]*testCourt(nil), courts...)
	snapshot := *courts[1]

	_ = WeightedSearch(courts, testFields(), "cal")

	assert.Equal(t, before, courts)
	assert.Equal(t, snapshot, *courts[1])
}

func TestWeightedSearch_WorksWithValueTypes(t *testing.T) {
	fields := []FieldSpec[string]{
		{Name: "self", Weight: 1, Get: func(s string) string { return s }},
	}

	got := WeightedSearch([]string{"Clay", "Hard", "Synthetic Clay"}, fields, "cla")
	assert.Equal(t, []string{"Clay", "Synthetic Clay"}, got)
}

func TestNewMatcher(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
		want  bool
	}{
		{"empty query matches anything", "", "anything", true},
		{"empty query matches empty text", "", "", true},
		{"empty text never matches", "a", "", false},
		{"short query at start", "bos", "boston, ma", true},
		{"short query token prefix", "ma", "boston, ma", true},
		{"short query mid-word rejected", "ost", "boston, ma", false},
		{"short query after hyphen", "sal", "winston-salem, nc", true},
		{"short query after period is mid-token", "lo", "st.louis", false},
		{"long query substring", "ston", "boston, ma", true},
		{"long query across tokens", "on, m", "boston, ma", true},
		{"long query absent", "texas", "boston, ma", false},
		{"multibyte short query", "ñu", "ñuñoa, santiago", true},
		{"short query after non-breaking space", "ang", "los\u00a0angeles, ca", true},
		{"short query after vertical tab", "ang", "los\vangeles", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMatcher(tt.query)(tt.text))
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "boston", NormalizeQuery("  BoStOn \n"))
	assert.Equal(t, "", NormalizeQuery("   "))
	assert.Equal(t, "boston", NormalizeQuery("\u00a0Boston\u00a0"))
}

// scoreOf recomputes a single record's score the same way WeightedSearch does.
func scoreOf[T any](fields []FieldSpec[T], item T, query string) float64 {
	match := NewMatcher(NormalizeQuery(query))
	var score float64
	for _, f := range fields {
		text := fieldText(f, item)
		if text != "" && match(strings.ToLower(text)) {
			score += f.Weight
		}
	}
	return score
}
