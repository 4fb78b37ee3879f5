package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/cachescape/plotting"
)

var plotOutDir string

var plotCmd = &cobra.Command{
	Use:   "plot RESULTS.csv",
	Short: "Render a simulator results table into per-metric bar charts",
	Long: `Plot reads a results CSV (a Metric column plus one column per ` +
		`compared configuration) and writes one bar-chart image per ` +
		`metric. Rows with no values at all are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := plotting.ReadResults(args[0])
		if err != nil {
			return err
		}

		if err := os.MkdirAll(plotOutDir, 0o755); err != nil {
			return err
		}

		written, err := plotting.Render(res, plotOutDir)
		if err != nil {
			return err
		}

		for _, path := range written {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d charts.\n", len(written))

		return nil
	},
}

func init() {
	plotCmd.Flags().StringVarP(&plotOutDir, "out", "o", ".",
		"directory to write chart images into")

	rootCmd.AddCommand(plotCmd)
}
