package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sarchlab/cachescape/generation"
	"github.com/sarchlab/cachescape/manifest"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full configuration design space",
	Long: `Generate crosses every variation set with every benchmark of ` +
		`the chosen group and writes one JSON configuration record per ` +
		`pair under the config directory. Missing trace files only ` +
		`produce a warning.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var (
	generateGroup    string
	generateManifest string
)

func init() {
	generateCmd.Flags().String("configs", "configs",
		"root directory for generated configuration records")
	generateCmd.Flags().String("traces", "traces",
		"directory holding benchmark trace files")
	generateCmd.Flags().StringVar(&generateGroup, "group", "all",
		"benchmark group to generate against")
	generateCmd.Flags().StringVar(&generateManifest, "manifest", "",
		"also record every written config into this SQLite manifest")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	configDir := resolveDir(cmd, "configs", "CACHESCAPE_CONFIGS_DIR", "configs")
	traceDir := resolveDir(cmd, "traces", "CACHESCAPE_TRACES_DIR", "traces")

	builder := generation.MakeBuilder().
		WithConfigDir(configDir).
		WithTraceDir(traceDir).
		WithBenchmarkGroup(generateGroup).
		WithOutput(cmd.OutOrStdout())

	var recorder *manifest.Recorder
	if generateManifest != "" {
		recorder = manifest.New(generateManifest)
		defer recorder.Close()

		builder = builder.WithManifest(recorder)
	}

	_, err := builder.Build().Run()

	return err
}
