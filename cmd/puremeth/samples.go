package main

import (
	"github.com/spf13/cobra"

	"github.com/puremeth/puremeth-go/internal/domain"
	"github.com/puremeth/puremeth-go/internal/sheet"
)

var samplesCmd = &cobra.Command{
	Use:   "samples <directory>",
	Short: "Generate a YAML samples manifest from a directory scan",
	Long: `Recursively scans a directory for files matching an extension and writes
a YAML manifest mapping sample names to their file paths.

Samples are named by filename stem by default; use --group to key entries
by parent directory or to keep one entry per file.`,
	Args: cobra.ExactArgs(1),
	RunE: runSamples,
}

func init() {
	samplesCmd.Flags().StringP("ext", "e", "", "File extension to match (default .fast5)")
	samplesCmd.Flags().StringP("output", "o", "", "Output filename (default samples_<timestamp>.yaml)")
	samplesCmd.Flags().StringP("group", "g", "", "Grouping strategy: stem, parent, or file")
}

func runSamples(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	strategy, err := domain.ParseGroupStrategy(flagOr(cmd, "group", cfg.Scan.Group))
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	gen := sheet.NewGenerator(log, newWriter(cfg))
	_, err = gen.SamplesYAML(ctx, sheet.SamplesOptions{
		Directory:      args[0],
		Extension:      flagOr(cmd, "ext", cfg.Scan.Extension),
		OutputFilename: flagOr(cmd, "output", ""),
		Strategy:       strategy,
		Progress:       cfg.Scan.Progress,
	})
	return err
}
