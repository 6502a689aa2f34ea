package cmd

import (
	"github.com/spf13/cobra"
)

var reactorCmd = &cobra.Command{
	Use:   "reactor",
	Short: "Reactor geometry and control rod states",
	Long: `Inspect the complete reference reactor: core loading tallies,
facility structure dimensions, and control rod states.

Subcommands:
  summary  - Print the reactor geometry summary
  rods     - Show control rod states, optionally repositioned`,
}

func init() {
	rootCmd.AddCommand(reactorCmd)
}
