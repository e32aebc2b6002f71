// Package cli provides the courtfinder command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "courtfinder",
	Short: "Find tennis courts by place, name and surface",
	Long: `courtfinder is a directory of tennis courts.

Courts are ranked by a weighted search over location, address, state,
name and surface. Queries of up to three characters match the start of
any word; longer queries match anywhere in the text.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
