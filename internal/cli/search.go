package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/court-finder/services"
)

var (
	searchSurface string
	searchIndoor  string
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the court directory",
	Long: `Ranks courts against a free-text query and prints the matches.

Without a query every court passing the facet filters is listed in
catalog order.`,
	Example: `  courtfinder search mass
  courtfinder search "new york" --surface Clay
  courtfinder search --indoor indoor --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchSurface, "surface", "s", services.FacetAll, "surface filter (all, Hard, Clay, Grass, Synthetic)")
	searchCmd.Flags().StringVarP(&searchIndoor, "indoor", "i", services.FacetAll, "indoor filter (all, indoor, outdoor)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp(configPath, false)
	if err != nil {
		return err
	}
	defer a.close()

	query := services.ListQuery{Surface: searchSurface, Indoor: searchIndoor}
	if len(args) == 1 {
		query.Query = args[0]
	}

	list, err := a.courts.List(query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, list)
	}
	outputSearchTable(cmd, list)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, list services.CourtList) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, list services.CourtList) {
	if len(list.Courts) == 0 {
		cmd.Println("No courts found.")
		return
	}

	for i, c := range list.Courts {
		setting := "outdoor"
		if c.Indoor {
			setting = "indoor"
		}
		cmd.Printf("  [%d] %s (%.1f, %d reviews)\n", i+1, c.Name, c.Rating, c.ReviewCount)
		cmd.Printf("      %s · %s\n", c.Location, c.Address)
		cmd.Printf("      %s\n", strings.Join([]string{c.Surface, setting}, ", "))
	}
	cmd.Printf("\n%d courts\n", list.Total)
}
