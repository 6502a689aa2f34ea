package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/spf13/cobra"
)

var (
	materialsName string
	materialsJSON bool
)

// catalog pairs each factory with the key used on the command line.
var catalog = []struct {
	key string
	fn  func(...material.Option) material.Material
}{
	{"fresh-fuel", material.FreshFuel},
	{"zirconium-filler", material.ZirconiumFiller},
	{"stainless-steel", material.StainlessSteel},
	{"graphite", material.Graphite},
	{"aluminum", material.Aluminum},
	{"air", material.Air},
	{"water", material.Water},
	{"boron-carbide", material.BoronCarbide},
	{"cadmium", material.Cadmium},
	{"molybdenum", material.Molybdenum},
}

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the reference material catalog",
	Long: `List the standard NETL TRIGA materials with their reference
compositions, densities, and temperatures.

Examples:
  # List the whole catalog
  gotriga materials

  # Show the full composition of one material
  gotriga materials --name fresh-fuel

  # Emit a material as JSON
  gotriga materials --name water --json`,
	Run: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)

	materialsCmd.Flags().StringVarP(&materialsName, "name", "n", "", "Show one material in full")
	materialsCmd.Flags().BoolVar(&materialsJSON, "json", false, "Emit as JSON (requires --name)")
}

func runMaterials(cmd *cobra.Command, args []string) {
	if materialsName != "" {
		for _, entry := range catalog {
			if entry.key == materialsName {
				printMaterial(entry.fn())
				return
			}
		}
		fmt.Printf("Error: unknown material %q.\n", materialsName)
		fmt.Println("Use 'gotriga materials' to list the catalog.")
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NETL TRIGA REFERENCE MATERIAL CATALOG")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Key\tName\tDensity\tNuclides\tS(a,b)\n")
	fmt.Fprintf(w, "  ───\t────\t───────\t────────\t──────\n")
	for _, entry := range catalog {
		m := entry.fn()
		sab := "-"
		if len(m.ScatteringTables) > 0 {
			sab = fmt.Sprintf("%d", len(m.ScatteringTables))
		}
		fmt.Fprintf(w, "  %s\t%s\t%g %s\t%d\t%s\n",
			entry.key, m.Name, m.Density, m.DensityUnit, len(m.Components), sab)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  All materials evaluated at %.1f K.\n", material.DefaultTemperature)
	fmt.Println("  Use 'gotriga materials --name <key>' for full compositions.")
	fmt.Println()
}

func printMaterial(m material.Material) {
	if materialsJSON {
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding material: %v\n", err)
			return
		}
		fmt.Println(string(out))
		return
	}

	fmt.Println()
	fmt.Printf("  Material: %s\n", m.Name)
	fmt.Printf("  Density:  %g %s\n", m.Density, m.DensityUnit)
	fmt.Printf("  Temperature: %.1f K\n", m.Temperature)
	if len(m.ScatteringTables) > 0 {
		fmt.Printf("  Scattering tables: %v\n", m.ScatteringTables)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nuclide\tFraction\tKind\n")
	fmt.Fprintf(w, "  ───────\t────────\t────\n")
	for _, c := range m.Components {
		fmt.Fprintf(w, "  %s\t%g\t%s\n", c.Nuclide, c.Fraction, c.Kind)
	}
	w.Flush()
	fmt.Println()
}
