package cli

import (
	"github.com/spf13/cobra"
)

var jaccardOpts matchOptions

var jaccardCmd = &cobra.Command{
	Use:   "jaccard",
	Short: "Rank job postings per training program by stem-set Jaccard similarity",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMatch(metricJaccard, &jaccardOpts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(jaccardCmd)
	addMatchFlags(jaccardCmd, &jaccardOpts)
}
