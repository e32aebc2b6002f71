package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gcbaptista/court-finder/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse courts interactively",
	Long: `Opens the interactive court list.

Controls:
  type       - Search (results update once typing pauses)
  ↑/↓        - Move selection
  Enter      - Court details and reviews
  Tab        - Cycle surface filter
  Shift+Tab  - Cycle indoor/outdoor filter
  Ctrl+R     - Clear search and filters
  Esc        - Back / Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	a, err := newApp(configPath, true)
	if err != nil {
		return err
	}
	defer a.close()

	m := tui.New(a.courts, a.settings.DebounceDelay())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	m.Bind(p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
