package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerjamatch/kerjamatch/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s (commit %s)\n", appName, version.Version, version.Commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
