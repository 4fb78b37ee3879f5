package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/cachescape/benchmarks"
	"github.com/sarchlab/cachescape/sweep"
)

var listCmd = &cobra.Command{
	Use:       "list [sets|benchmarks|groups]",
	Short:     "List variation sets, benchmarks, or benchmark groups",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"sets", "benchmarks", "groups"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		switch args[0] {
		case "sets":
			for _, set := range sweep.Registry() {
				fmt.Fprintf(out, "%s (%d templates)\n",
					set.ID, len(set.Generate()))
			}
		case "benchmarks":
			for _, b := range benchmarks.DefaultCatalog().All() {
				fmt.Fprintf(out, "%-20s %-24s %s\n",
					b.Key, b.TraceFile, b.Description)
			}
		case "groups":
			catalog := benchmarks.DefaultCatalog()
			for _, name := range benchmarks.GroupNames() {
				group, err := catalog.Group(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%d benchmarks)\n", name, len(group))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
