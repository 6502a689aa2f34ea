package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/netl-modeling/gotriga/internal/netl"
	"github.com/netl-modeling/gotriga/internal/triga"
	"github.com/spf13/cobra"
)

var elementJSON bool

var elementCmd = &cobra.Command{
	Use:   "element <kind>",
	Short: "Show reference element geometry",
	Long: `Show the reference geometry of one element type.

Kinds:
  fuel             - Standard fuel element
  graphite         - Graphite dummy element
  transient-rod    - Pulse rod
  control-rod      - Fuel follower control rod
  central-thimble  - Central experiment tube
  source-holder    - Startup source holder

Examples:
  gotriga element fuel
  gotriga element control-rod --json`,
	Args: cobra.ExactArgs(1),
	Run:  runElement,
}

func init() {
	rootCmd.AddCommand(elementCmd)

	elementCmd.Flags().BoolVar(&elementJSON, "json", false, "Emit as JSON")
}

func runElement(cmd *cobra.Command, args []string) {
	var elem triga.Element
	switch args[0] {
	case "fuel":
		elem = triga.DefaultFuelElement()
	case "graphite":
		elem = triga.DefaultGraphiteElement()
	case "transient-rod":
		elem = netl.DefaultTransientRod()
	case "control-rod":
		elem = netl.DefaultFuelFollowerControlRod()
	case "central-thimble":
		elem = netl.DefaultCentralThimble()
	case "source-holder":
		elem = netl.DefaultSourceHolder()
	default:
		fmt.Printf("Error: unknown element kind %q.\n", args[0])
		fmt.Println("Use 'gotriga element --help' for the list of kinds.")
		return
	}

	if elementJSON {
		out, err := json.MarshalIndent(elem, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding element: %v\n", err)
			return
		}
		fmt.Println(string(out))
		return
	}

	fmt.Println()
	fmt.Printf("  Element kind: %s\n", elem.Kind())
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	switch e := elem.(type) {
	case triga.FuelElement:
		fmt.Fprintf(w, "  Cladding:\t%.4f cm OR, %.4f cm wall (%s)\n", e.Cladding.OuterRadius, e.Cladding.Thickness, e.Cladding.Material.Name)
		fmt.Fprintf(w, "  Fuel meat:\t%.4f cm IR, %.4f cm OR, %.4f cm long\n", e.Meat.InnerRadius, e.Meat.OuterRadius, e.Meat.Length)
		fmt.Fprintf(w, "  Zirconium rod:\t%.4f cm radius\n", e.ZirconiumRod.Radius)
		fmt.Fprintf(w, "  Reflectors:\t%.4f cm upper, %.4f cm lower\n", e.UpperReflector.Thickness, e.LowerReflector.Thickness)
		fmt.Fprintf(w, "  Interior length:\t%.4f cm\n", e.InteriorLength())
		fmt.Fprintf(w, "  Overall length:\t%.4f cm\n", e.Length())
	case triga.GraphiteElement:
		fmt.Fprintf(w, "  Cladding:\t%.4f cm OR, %.4f cm wall (%s)\n", e.Cladding.OuterRadius, e.Cladding.Thickness, e.Cladding.Material.Name)
		fmt.Fprintf(w, "  Graphite meat:\t%.4f cm radius, %.4f cm long\n", e.Meat.Radius, e.Meat.Length)
		fmt.Fprintf(w, "  Overall length:\t%.4f cm\n", e.Length())
	case netl.TransientRod:
		fmt.Fprintf(w, "  Cladding:\t%.4f cm OR, %.4f cm wall (%s)\n", e.Cladding.OuterRadius, e.Cladding.Thickness, e.Cladding.Material.Name)
		fmt.Fprintf(w, "  Absorber:\t%.4f cm radius, %.4f cm long (%s)\n", e.Absorber.Radius, e.Absorber.Length, e.Absorber.Material.Name)
		fmt.Fprintf(w, "  Air follower:\t%.4f cm long\n", e.AirFollower.Length)
		fmt.Fprintf(w, "  Full stroke:\t%.4f cm\n", e.MaxWithdrawal)
	case netl.FuelFollowerControlRod:
		fmt.Fprintf(w, "  Cladding:\t%.4f cm OR, %.4f cm wall (%s)\n", e.Cladding.OuterRadius, e.Cladding.Thickness, e.Cladding.Material.Name)
		fmt.Fprintf(w, "  Absorber:\t%.4f cm radius, %.4f cm long (%s)\n", e.Absorber.Radius, e.Absorber.Length, e.Absorber.Material.Name)
		fmt.Fprintf(w, "  Fuel follower:\t%.4f cm IR, %.4f cm OR, %.4f cm long\n", e.FuelFollower.InnerRadius, e.FuelFollower.OuterRadius, e.FuelFollower.Length)
		fmt.Fprintf(w, "  Follower fuel density:\t%g g/cm3\n", e.FuelFollower.Material.Density)
		fmt.Fprintf(w, "  Full stroke:\t%.4f cm\n", e.MaxWithdrawal)
	case netl.CentralThimble:
		fmt.Fprintf(w, "  Tube:\t%.4f cm IR, %.4f cm OR (%s)\n", e.InnerRadius, e.OuterRadius, e.Material.Name)
		fmt.Fprintf(w, "  Length:\t%.4f cm\n", e.Length)
	case netl.SourceHolder:
		fmt.Fprintf(w, "  Body:\t%.4f cm radius, %.4f cm long (%s)\n", e.BodyRadius, e.Length, e.Body.Name)
		fmt.Fprintf(w, "  Cavity:\t%.4f cm radius, %.4f cm long (%s)\n", e.CavityRadius, e.CavityLength, e.Cavity.Name)
		fmt.Fprintf(w, "  Standoff above lower plate:\t%.4f cm\n", e.DistanceAboveLowerGridPlate)
	}
	w.Flush()
	fmt.Println()
}
