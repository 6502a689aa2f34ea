package cmd

import (
	"fmt"

	"github.com/netl-modeling/gotriga/internal/diagram"
	"github.com/netl-modeling/gotriga/internal/netl"
	"github.com/spf13/cobra"
)

var coreMapExportFile string

var coreMapCmd = &cobra.Command{
	Use:   "map",
	Short: "Draw the core loading map",
	Long: `Draw the nominal core loading map as ASCII, viewed from above with
north up, or export it as a plan-view image.

Examples:
  gotriga core map
  gotriga core map --output core.png`,
	Run: runCoreMap,
}

func init() {
	coreCmd.AddCommand(coreMapCmd)

	coreMapCmd.Flags().StringVarP(&coreMapExportFile, "output", "o", "", "Export plan view to file (png, svg, pdf)")
}

func runCoreMap(cmd *cobra.Command, args []string) {
	reactor := netl.DefaultReactor()

	if coreMapExportFile != "" {
		data, err := diagram.CorePlan(reactor)
		if err != nil {
			fmt.Printf("Error building plan view: %v\n", err)
			return
		}
		if err := diagram.ExportCorePlan(data, coreMapExportFile); err != nil {
			fmt.Printf("Error exporting plan view: %v\n", err)
			return
		}
		fmt.Printf("Plan view exported to %s\n", coreMapExportFile)
		return
	}

	data, err := diagram.CoreMap(reactor)
	if err != nil {
		fmt.Printf("Error building core map: %v\n", err)
		return
	}
	fmt.Print(diagram.DrawASCIICoreMap(data))
	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("NOMINAL LOADING", diagram.Tally(data)))
	fmt.Println()
}
