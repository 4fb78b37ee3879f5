package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/cachescape/benchmarks"
)

var checkTracesCmd = &cobra.Command{
	Use:   "check-traces",
	Short: "Check which benchmark trace files are present",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		traceDir := resolveDir(cmd, "traces", "CACHESCAPE_TRACES_DIR", "traces")

		all := benchmarks.CheckTraces(
			benchmarks.DefaultCatalog(), traceDir, cmd.OutOrStdout())
		if all {
			fmt.Fprintln(cmd.OutOrStdout(), "All trace files present.")
		}

		return nil
	},
}

func init() {
	checkTracesCmd.Flags().String("traces", "traces",
		"directory holding benchmark trace files")

	rootCmd.AddCommand(checkTracesCmd)
}
