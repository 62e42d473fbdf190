package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/puremeth/puremeth-go/internal/config"
	"github.com/puremeth/puremeth-go/internal/output"
	"github.com/puremeth/puremeth-go/internal/utils"
	"github.com/puremeth/puremeth-go/pkg/version"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puremeth",
	Short: "Generate sample manifests for nanopore methylation pipelines",
	Long: `puremeth scans a directory tree for sequencing data files and generates
pipeline manifests: a YAML samples manifest, a TSV sample sheet with
patient/sample/condition metadata, or a nested tumor-normal YAML.

Previously generated manifests can be validated with the validate command.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.puremeth/config.yaml)")
	rootCmd.PersistentFlags().StringP("output-dir", "C", ".", "Directory manifests are written to")
	rootCmd.PersistentFlags().Bool("force", false, "Overwrite existing output files")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Resolve output paths without writing files")
	rootCmd.PersistentFlags().Bool("progress", false, "Show a progress bar while scanning")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.directory", rootCmd.PersistentFlags().Lookup("output-dir"))
	_ = viper.BindPFlag("output.overwrite", rootCmd.PersistentFlags().Lookup("force"))
	_ = viper.BindPFlag("output.dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("scan.progress", rootCmd.PersistentFlags().Lookup("progress"))

	// Add subcommands
	rootCmd.AddCommand(samplesCmd)
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(tumorNormalCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// setup loads configuration and builds the logger shared by all commands
func setup() (*config.Config, *utils.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	utils.SetGlobalLevel(logLevel)
	log := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	return cfg, log, nil
}

// newWriter builds the manifest writer from config
func newWriter(cfg *config.Config) *output.Writer {
	return output.NewWriter(output.WriterOptions{
		BaseDir: utils.ExpandPath(cfg.Output.Directory),
		Force:   cfg.Output.Overwrite,
		DryRun:  cfg.Output.DryRun,
	})
}

// signalContext returns a context cancelled on SIGINT or SIGTERM
func signalContext(log *utils.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.Info().Msg("Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// flagOr returns the flag value when it was set on the command line, the
// fallback otherwise
func flagOr(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return fallback
}
