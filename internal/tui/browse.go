// Package tui provides the interactive court browser for the terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gcbaptista/court-finder/internal/courts"
	"github.com/gcbaptista/court-finder/internal/search"
	"github.com/gcbaptista/court-finder/model"
	"github.com/gcbaptista/court-finder/services"
)

// QueryMsg carries a settled search query. Messages whose query no longer
// matches the input are stale and ignored.
type QueryMsg struct {
	Query string
}

var (
	surfaceFacets = append([]string{services.FacetAll}, model.Surfaces...)
	indoorFacets  = []string{services.FacetAll, services.IndoorOnly, services.OutdoorOnly}
)

// Model is the bubbletea model of the browser: a search box, two facet
// selectors, a ranked list and a detail pane.
type Model struct {
	browser services.CourtBrowser
	styles  *Styles
	input   textinput.Model
	delay   time.Duration

	debounced func(string)

	query      string // last settled query
	surfaceIdx int
	indoorIdx  int

	results []services.CourtSummary
	cursor  int
	detail  *services.CourtDetail
	err     error

	width  int
	height int
}

// New creates a browser over browser. Typed queries settle after delay once
// Bind has connected the model to a running program; unbound models apply
// every keystroke immediately.
func New(browser services.CourtBrowser, delay time.Duration) *Model {
	ti := textinput.New()
	ti.Placeholder = "City, state, court name or surface..."
	ti.CharLimit = 128
	ti.Width = 48
	ti.Focus()

	m := &Model{
		browser: browser,
		styles:  DefaultStyles(),
		input:   ti,
		delay:   delay,
		width:   80,
		height:  24,
	}
	m.refresh()
	return m
}

// Bind routes settled queries through send, normally tea.Program.Send.
func (m *Model) Bind(send func(tea.Msg)) {
	m.debounced = search.Debounce(func(q string) {
		send(QueryMsg{Query: q})
	}, m.delay)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case QueryMsg:
		if msg.Query != m.input.Value() {
			return m, nil
		}
		m.query = msg.Query
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.detail != nil {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyBackspace, tea.KeyLeft:
			m.detail = nil
		}
		return m, nil
	}

	//nolint:exhaustive // only navigation keys are handled here
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil
	case tea.KeyTab:
		m.surfaceIdx = (m.surfaceIdx + 1) % len(surfaceFacets)
		m.refresh()
		return m, nil
	case tea.KeyShiftTab:
		m.indoorIdx = (m.indoorIdx + 1) % len(indoorFacets)
		m.refresh()
		return m, nil
	case tea.KeyEnter:
		m.openSelected()
		return m, nil
	case tea.KeyCtrlR:
		m.clearFilters()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.queryChanged(value)
	}
	return m, cmd
}

// clearFilters resets the query and both facets and lists the whole directory.
// A pending debounced query is dropped as stale once the input is empty.
func (m *Model) clearFilters() {
	m.input.Reset()
	m.query = ""
	m.surfaceIdx = 0
	m.indoorIdx = 0
	m.cursor = 0
	m.refresh()
}

func (m *Model) queryChanged(value string) {
	if m.debounced == nil {
		m.query = value
		m.refresh()
		return
	}
	m.debounced(value)
}

func (m *Model) refresh() {
	list, err := m.browser.List(services.ListQuery{
		Query:   m.query,
		Surface: surfaceFacets[m.surfaceIdx],
		Indoor:  indoorFacets[m.indoorIdx],
	})
	m.err = err
	if err != nil {
		return
	}
	m.results = list.Courts
	if m.cursor >= len(m.results) {
		m.cursor = max(len(m.results)-1, 0)
	}
}

func (m *Model) openSelected() {
	if m.cursor >= len(m.results) {
		return
	}
	detail, err := m.browser.Get(m.results[m.cursor].ID)
	if err != nil {
		m.err = err
		return
	}
	m.detail = &detail
}

// Results returns the courts currently listed, in ranking order.
func (m *Model) Results() []services.CourtSummary {
	return m.results
}

// Selected returns the court under the cursor, or nil when the list is empty.
func (m *Model) Selected() *model.Court {
	if m.cursor >= len(m.results) {
		return nil
	}
	return m.results[m.cursor].Court
}

// Detail returns the open detail pane, or nil on the list view.
func (m *Model) Detail() *services.CourtDetail {
	return m.detail
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.detail != nil {
		return m.detailView()
	}
	return m.listView()
}

func (m *Model) listView() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Court Finder"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Facet.Render("surface: "+surfaceFacets[m.surfaceIdx]),
		m.styles.Facet.Render("indoor: "+indoorFacets[m.indoorIdx]),
	))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if len(m.results) == 0 {
		b.WriteString(m.styles.Muted.Render("No courts match your search."))
		b.WriteString("\n")
	}

	visible := max(m.height-10, 3)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	for i := start; i < len(m.results) && i < start+visible; i++ {
		c := m.results[i]
		line := fmt.Sprintf("%-28s %-22s %-9s %.1f★ (%d)", c.Name, c.Location, c.Surface, c.Rating, c.ReviewCount)
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf(
		"%d courts  ↑/↓ move  enter details  tab surface  shift+tab indoor  ctrl+r clear  esc quit", len(m.results))))
	return b.String()
}

func (m *Model) detailView() string {
	d := m.detail
	c := d.Court
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(c.Name))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(c.Location + " · " + c.Address))
	b.WriteString("\n\n")

	setting := "Outdoor"
	if c.Indoor {
		setting = "Indoor"
	}
	info := []string{
		fmt.Sprintf("Surface:  %s (%s)", c.Surface, setting),
		fmt.Sprintf("Rating:   %.1f from %d reviews", c.Rating, d.ReviewCount),
	}
	if c.HourlyRate > 0 {
		info = append(info, fmt.Sprintf("Rate:     $%d/hour", c.HourlyRate))
	}
	if c.Lighting {
		info = append(info, "Lighting: yes")
	}
	if c.Phone != "" {
		info = append(info, "Phone:    "+c.Phone)
	}
	if c.Website != "" {
		info = append(info, "Website:  "+c.Website)
	}
	if len(c.Amenities) > 0 {
		info = append(info, "Amenities: "+strings.Join(c.Amenities, ", "))
	}
	b.WriteString(m.styles.Box.Render(strings.Join(info, "\n")))
	b.WriteString("\n\n")

	for _, bucket := range d.Ratings {
		bar := strings.Repeat("█", int(bucket.Percentage/5))
		b.WriteString(fmt.Sprintf("%d %s %-20s %d\n", bucket.Stars, m.styles.Star.Render("★"), bar, bucket.Count))
	}
	b.WriteString("\n")

	if len(d.Reviews) == 0 {
		b.WriteString(m.styles.Muted.Render("No reviews yet."))
		b.WriteString("\n")
	}
	for _, r := range d.Reviews {
		stars := strings.Repeat("★", r.Rating) + strings.Repeat("☆", courts.MaxRating-r.Rating)
		b.WriteString(fmt.Sprintf("%s %s %s\n", m.styles.Star.Render(stars), r.UserName, m.styles.Muted.Render(r.Date)))
		b.WriteString("  " + r.Comment + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("esc back  ctrl+c quit"))
	return b.String()
}
