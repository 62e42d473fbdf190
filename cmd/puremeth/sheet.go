package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/puremeth/puremeth-go/internal/domain"
	"github.com/puremeth/puremeth-go/internal/sheet"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet <directory>",
	Short: "Generate a TSV sample sheet from a directory scan",
	Long: `Recursively scans a directory and writes a TSV sheet with patient, sample,
condition, and path columns.

Conditions are detected from path segments: a segment containing "tumor" or
"normal" (case-insensitive) marks the condition, the segment before it the
patient, and the segment after it the sample. Custom conditions can be added
with --condition label=pattern[,pattern].`,
	Args: cobra.ExactArgs(1),
	RunE: runSheet,
}

func init() {
	sheetCmd.Flags().StringP("ext", "e", "", "File extension to match (default .fast5)")
	sheetCmd.Flags().StringP("output", "o", "", "Output filename (default samples_<timestamp>.tsv)")
	sheetCmd.Flags().StringArray("condition", nil, "Condition patterns as label=pattern[,pattern] (repeatable)")
}

func runSheet(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	conditions := cfg.ConditionPatterns()
	specs, _ := cmd.Flags().GetStringArray("condition")
	if len(specs) > 0 {
		conditions, err = parseConditions(specs)
		if err != nil {
			return err
		}
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	gen := sheet.NewGenerator(log, newWriter(cfg))
	_, err = gen.SamplesTSV(ctx, sheet.SheetOptions{
		Directory:      args[0],
		Extension:      flagOr(cmd, "ext", cfg.Scan.Extension),
		OutputFilename: flagOr(cmd, "output", ""),
		Conditions:     conditions,
		Progress:       cfg.Scan.Progress,
	})
	return err
}

// parseConditions parses repeated label=pattern[,pattern] flags
func parseConditions(specs []string) (domain.ConditionPatterns, error) {
	patterns := make(domain.ConditionPatterns, len(specs))
	for _, spec := range specs {
		label, list, ok := strings.Cut(spec, "=")
		if !ok || label == "" || list == "" {
			return nil, fmt.Errorf("invalid condition %q (want label=pattern[,pattern])", spec)
		}
		patterns[label] = strings.Split(list, ",")
	}
	return patterns, nil
}
