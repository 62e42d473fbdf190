package main

import (
	"github.com/spf13/cobra"

	"github.com/puremeth/puremeth-go/internal/config"
	"github.com/puremeth/puremeth-go/internal/scanner"
	"github.com/puremeth/puremeth-go/internal/sheet"
)

var tumorNormalCmd = &cobra.Command{
	Use:   "tumor-normal <directory>",
	Short: "Generate a nested tumor-normal YAML manifest",
	Long: `Scans a directory for alignment files and groups them by patient ID and
sample type based on filename patterns, then writes a nested
SAMPLES -> patient -> TUMOR|NORMAL -> sample manifest.

Files whose name does not contain the patient pattern or a tumor/normal
marker are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runTumorNormal,
}

func init() {
	tumorNormalCmd.Flags().StringP("ext", "e", "", "File extension to match (default .sorted.bam)")
	tumorNormalCmd.Flags().StringP("output", "o", "", "Output filename (default tumor_normal_samples_<timestamp>.yaml)")
	tumorNormalCmd.Flags().String("patient-pattern", "", "Substring marking the start of a patient ID")
	tumorNormalCmd.Flags().String("tumor-pattern", "", "Substring marking tumor samples")
	tumorNormalCmd.Flags().String("normal-pattern", "", "Substring marking normal samples")
}

func runTumorNormal(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	patients, err := scanner.DiscoverPatients(ctx, args[0], scanner.DiscoverOptions{
		Extension:      flagOr(cmd, "ext", config.DefaultBAMExtension),
		PatientPattern: flagOr(cmd, "patient-pattern", cfg.Patterns.Patient),
		TumorPattern:   flagOr(cmd, "tumor-pattern", cfg.Patterns.Tumor),
		NormalPattern:  flagOr(cmd, "normal-pattern", cfg.Patterns.Normal),
	})
	if err != nil {
		return err
	}

	if len(patients) == 0 {
		log.Warn().Str("dir", args[0]).Msg("no patients discovered, writing empty manifest")
	}

	gen := sheet.NewGenerator(log, newWriter(cfg))
	_, err = gen.TumorNormalYAML(ctx, patients, sheet.TumorNormalOptions{
		OutputFilename: flagOr(cmd, "output", ""),
	})
	return err
}
