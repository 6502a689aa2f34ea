package cmd

import (
	"github.com/spf13/cobra"
)

var coreCmd = &cobra.Command{
	Use:   "core",
	Short: "Core loading map inspection",
	Long: `Inspect the nominal core loading of the NETL TRIGA reactor.

Subcommands:
  map       - Draw the core loading map
  position  - Look up one lattice position

The nominal loading carries fuel in every non-reserved position except
the documented water holes and the startup source at G-32.`,
}

func init() {
	rootCmd.AddCommand(coreCmd)
}
