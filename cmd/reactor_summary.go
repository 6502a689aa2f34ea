package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/netl-modeling/gotriga/internal/diagram"
	"github.com/netl-modeling/gotriga/internal/netl"
	"github.com/spf13/cobra"
)

var summaryJSON bool

var reactorSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the reactor geometry summary",
	Long: `Print the reference reactor in one page: core loading tally, lattice
geometry, grid plates, and the structures out to the pool boundary.

Examples:
  gotriga reactor summary
  gotriga reactor summary --json`,
	Run: runReactorSummary,
}

func init() {
	reactorCmd.AddCommand(reactorSummaryCmd)

	reactorSummaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Emit the full reactor description as JSON")
}

func runReactorSummary(cmd *cobra.Command, args []string) {
	reactor := netl.DefaultReactor()

	if summaryJSON {
		out, err := json.MarshalIndent(reactor, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding reactor: %v\n", err)
			return
		}
		fmt.Println(string(out))
		return
	}

	s := reactor.Summarize()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NETL TRIGA MARK II REACTOR SUMMARY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("CORE LOADING", []string{
		fmt.Sprintf("fuel elements        %3d", s.FuelElements),
		fmt.Sprintf("graphite elements    %3d", s.GraphiteElements),
		fmt.Sprintf("source holders       %3d", s.SourceHolders),
		fmt.Sprintf("water holes          %3d", s.WaterHoles),
		fmt.Sprintf("reserved positions   %3d", s.ReservedCount),
	}))
	fmt.Println()

	fmt.Println("LATTICE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pitch:\t%.4f cm\n", reactor.Core.Pitch())
	fmt.Fprintf(w, "  Positions:\t%d in 7 rings (A through G)\n", len(netl.Positions()))
	fmt.Fprintf(w, "  Reserved:\t%v\n", netl.ReservedPositions())
	w.Flush()
	fmt.Println()

	fmt.Println("GRID PLATES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tThickness\tDistance from midplane\n")
	fmt.Fprintf(w, "  Upper\t%.4f cm\t%.4f cm\n", reactor.UpperGridPlate.Thickness, reactor.UpperGridPlate.DistanceFromMidplane)
	fmt.Fprintf(w, "  Lower\t%.4f cm\t%.4f cm\n", reactor.LowerGridPlate.Thickness, reactor.LowerGridPlate.DistanceFromMidplane)
	w.Flush()
	fmt.Println()

	fmt.Println("STRUCTURES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shroud:\t%.4f cm across flats, %.4f cm tall\n", reactor.Shroud.LargeFlatToFlat, reactor.Shroud.Height)
	fmt.Fprintf(w, "  Reflector:\t%.4f cm radius, %.4f cm tall\n", reactor.Reflector.Radius, reactor.Reflector.Height)
	fmt.Fprintf(w, "  Specimen rack:\t%d tubes on a %.4f cm circle\n", reactor.SpecimenRack.TubeCount, reactor.SpecimenRack.TubeCircleRadius)
	fmt.Fprintf(w, "  Pool section:\t%.1f cm radius, %.1f cm tall\n", reactor.Pool.Radius, reactor.Pool.Height)
	fmt.Fprintf(w, "  Beam ports:\t%d\n", len(reactor.BeamPorts))
	w.Flush()
	fmt.Println()
}
