package cmd

import (
	"fmt"
	"os"

	"github.com/netl-modeling/gotriga/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotriga",
	Short: "NETL TRIGA Reactor Data Toolkit",
	Long: `gotriga - NETL TRIGA Mark II Reactor Data Toolkit

A CLI tool for the parametric geometry and material data of the TRIGA
Mark II research reactor at the Nuclear Engineering Teaching Laboratory
(NETL), The University of Texas at Austin.

This tool helps reactor modelers inspect:
  - The standard material catalog with reference compositions
  - Fuel and graphite element geometry
  - Control rod geometry and positions
  - The core loading map and facility structures

All dimensions trace to the facility drawings and safety analysis report.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gotriga v%-47s║\n", version.Version)
		fmt.Println("  ║   NETL TRIGA Mark II Reactor Data Toolkit                 ║")
		fmt.Printf("  ║   %s ©  %s                               ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the parametric geometry and material data of the")
		fmt.Println("  NETL TRIGA Mark II research reactor.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Reference material catalog with nuclide compositions")
		fmt.Println("    • Core loading map (ASCII and image export)")
		fmt.Println("    • Lattice position lookup and coordinates")
		fmt.Println("    • Reactor geometry summary and control rod states")
		fmt.Println()
		fmt.Println("  Use 'gotriga --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
