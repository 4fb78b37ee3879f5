// Package cmd provides the command-line interface for cachescape.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "cachescape",
	Short: "Cachescape explores cache-hierarchy design spaces for an " +
		"external cache simulator.",
	Long: `Cachescape sweeps the structural axes of a cache hierarchy ` +
		`(capacity, associativity, block size, policies, inclusion, ` +
		`level ratios) against a catalog of access-pattern benchmarks ` +
		`and writes one simulator configuration file per combination. ` +
		`It can also render a simulator results table into per-metric ` +
		`comparison charts.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file can pre-seed the directory environment variables.
	// Absence is fine.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveDir picks a directory: an explicitly set flag wins, then the
// environment variable, then the conventional default.
func resolveDir(cmd *cobra.Command, flagName, envKey, fallback string) string {
	if cmd.Flags().Changed(flagName) {
		v, err := cmd.Flags().GetString(flagName)
		if err != nil {
			panic(err)
		}

		return v
	}

	if v := os.Getenv(envKey); v != "" {
		return v
	}

	return fallback
}
