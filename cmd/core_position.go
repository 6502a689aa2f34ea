package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/netl-modeling/gotriga/internal/netl"
	"github.com/netl-modeling/gotriga/internal/triga"
	"github.com/spf13/cobra"
)

var corePositionCmd = &cobra.Command{
	Use:   "position <label>",
	Short: "Look up one lattice position",
	Long: `Look up what occupies a lattice position in the nominal loading and
where it sits on the core midplane.

Position labels are ring letter plus index, e.g. B-01 or G-14.

Examples:
  gotriga core position A-01
  gotriga core position G-32`,
	Args: cobra.ExactArgs(1),
	Run:  runCorePosition,
}

func init() {
	coreCmd.AddCommand(corePositionCmd)
}

func runCorePosition(cmd *cobra.Command, args []string) {
	label := strings.ToUpper(args[0])
	reactor := netl.DefaultReactor()

	elem, err := reactor.ElementAt(label)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	x, y, err := reactor.Core.Coordinates(label)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	occupant := "water (empty)"
	if elem != nil {
		occupant = string(elem.Kind())
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Position:\t%s\n", label)
	fmt.Fprintf(w, "  Occupant:\t%s\n", occupant)
	fmt.Fprintf(w, "  Reserved:\t%v\n", netl.IsReserved(label))
	fmt.Fprintf(w, "  Midplane x, y:\t%.4f, %.4f cm\n", x, y)
	w.Flush()

	switch e := elem.(type) {
	case netl.TransientRod:
		printRodState(e.State(), e.FractionWithdrawn, e.Withdrawal(), e.MidplaneSection())
	case netl.FuelFollowerControlRod:
		printRodState(e.State(), e.FractionWithdrawn, e.Withdrawal(), e.MidplaneSection())
	case triga.FuelElement:
		fmt.Printf("  Interior length: %.4f cm\n", e.InteriorLength())
	}
	fmt.Println()
}

func printRodState(state netl.RodState, fraction, withdrawal float64, section netl.RodSection) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  State:\t%s\n", state)
	fmt.Fprintf(w, "  Fraction withdrawn:\t%.4f\n", fraction)
	fmt.Fprintf(w, "  Withdrawal:\t%.4f cm\n", withdrawal)
	fmt.Fprintf(w, "  At midplane:\t%s\n", section)
	w.Flush()
}
