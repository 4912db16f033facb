package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mreflow/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mreflow version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mreflow", version.Colored())
		if version.GitCommit != "" {
			fmt.Println("commit:", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Println("built:", version.BuildDate)
		}
	},
}
