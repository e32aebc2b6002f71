package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Facet    lipgloss.Style
	Error    lipgloss.Style
	Star     lipgloss.Style
	Box      lipgloss.Style
}

// DefaultStyles returns the styles used by the browser.
func DefaultStyles() *Styles {
	var (
		primary = lipgloss.Color("#16A34A") // Court green
		accent  = lipgloss.Color("#EAB308") // Ball yellow
		muted   = lipgloss.Color("#6C7086")
		errCol  = lipgloss.Color("#F38BA8")
		border  = lipgloss.Color("#45475A")
	)

	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Normal:   lipgloss.NewStyle(),
		Facet:    lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(border),
		Error:    lipgloss.NewStyle().Foreground(errCol),
		Star:     lipgloss.NewStyle().Foreground(accent),
		Box:      lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(border),
	}
}
