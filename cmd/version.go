package cmd

import (
	"fmt"

	"github.com/netl-modeling/gotriga/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gotriga",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gotriga v%s\n", version.Version)
		fmt.Println("NETL TRIGA Mark II Reactor Data Toolkit")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
