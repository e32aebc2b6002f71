package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/gcbaptista/court-finder/internal/testing"
	"github.com/gcbaptista/court-finder/services"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return New(testutil.NewTestService(t), 20*time.Millisecond)
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func resultIDs(m *Model) []string {
	return testutil.SummaryIDs(services.CourtList{Courts: m.Results()})
}

func TestNew_ListsWholeCatalog(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7"}, resultIDs(m))
	require.NotNil(t, m.Selected())
	assert.Equal(t, "c1", m.Selected().ID)
	assert.Nil(t, m.Detail())
}

func TestModel_TypingWithoutProgramAppliesImmediately(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "mass")

	assert.Equal(t, []string{"c1", "c3"}, resultIDs(m))
}

func TestModel_Facets(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, []string{"c2", "c3", "c4"}, resultIDs(m), "surface Hard")

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, []string{"c3"}, resultIDs(m), "Hard and indoor")

	for range surfaceFacets[1:] {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, []string{"c3", "c7"}, resultIDs(m), "all surfaces and indoor")
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "c1", m.Selected().ID)

	for i := 0; i < 20; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, "c7", m.Selected().ID)

	typeText(m, "boston")
	require.NotNil(t, m.Selected())
	assert.Equal(t, "c3", m.Selected().ID, "cursor clamps to the shorter list")

	typeText(m, "zzz")
	assert.Nil(t, m.Selected())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.Detail())
}

func TestModel_DetailPane(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Detail())
	assert.Equal(t, "c1", m.Detail().Court.ID)
	assert.Equal(t, 3, m.Detail().ReviewCount)
	assert.Contains(t, m.View(), "Riverside Courts")
	assert.Contains(t, m.View(), "Maria")

	typeText(m, "x")
	assert.NotNil(t, m.Detail(), "typing is ignored on the detail pane")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.Detail())
	assert.Contains(t, m.View(), "7 courts")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_BoundQueriesAreDebounced(t *testing.T) {
	m := newTestModel(t)
	sent := make(chan tea.Msg, 10)
	m.Bind(func(msg tea.Msg) { sent <- msg })

	typeText(m, "bos")
	assert.Len(t, m.Results(), 7, "results wait for the query to settle")

	var msg tea.Msg
	select {
	case msg = <-sent:
	case <-time.After(time.Second):
		t.Fatal("debounced query was never sent")
	}
	assert.Equal(t, QueryMsg{Query: "bos"}, msg)

	select {
	case extra := <-sent:
		t.Fatalf("burst produced a second message: %v", extra)
	case <-time.After(60 * time.Millisecond):
	}

	m.Update(msg)
	assert.Equal(t, []string{"c1", "c3"}, resultIDs(m))
}

func TestModel_StaleQueryIgnored(t *testing.T) {
	m := newTestModel(t)
	m.Bind(func(tea.Msg) {})

	typeText(m, "clay")
	m.Update(QueryMsg{Query: "cla"})
	assert.Len(t, m.Results(), 7)

	m.Update(QueryMsg{Query: "clay"})
	assert.Equal(t, []string{"c5", "c1"}, resultIDs(m))
}

func TestModel_ClearFilters(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "boston")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, []string{"c3"}, resultIDs(m))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7"}, resultIDs(m))
	assert.Equal(t, "c1", m.Selected().ID)
	assert.Contains(t, m.View(), "surface: all")
	assert.Contains(t, m.View(), "indoor: all")
}

func TestModel_ClearFiltersDropsPendingQuery(t *testing.T) {
	m := newTestModel(t)
	sent := make(chan tea.Msg, 10)
	m.Bind(func(msg tea.Msg) { sent <- msg })

	typeText(m, "clay")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	select {
	case msg := <-sent:
		m.Update(msg)
	case <-time.After(time.Second):
		t.Fatal("debounced query was never sent")
	}
	assert.Len(t, m.Results(), 7, "the settled query predates the reset")
}
