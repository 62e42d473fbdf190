package main

import (
	"github.com/spf13/cobra"

	"github.com/puremeth/puremeth-go/internal/sheet"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest>",
	Short: "Validate a previously generated manifest",
	Long: `Checks the structure of a samples or tumor-normal manifest. The layout is
detected from the top-level key. Referenced files that no longer exist are
reported as warnings, not failures.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	_, log, err := setup()
	if err != nil {
		return err
	}

	validator := sheet.NewValidator(log)
	kind, err := validator.Validate(args[0])
	if err != nil {
		return err
	}

	log.Info().Str("path", args[0]).Str("kind", string(kind)).Msg("manifest is valid")
	return nil
}
