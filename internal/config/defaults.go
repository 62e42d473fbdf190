package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Scan defaults
	DefaultExtension = ".fast5"
	DefaultGroup     = "stem"

	// Output defaults
	DefaultOutputDir = "."

	// Patient discovery defaults
	DefaultPatientPattern = "SHAH_H"
	DefaultTumorPattern   = "_T"
	DefaultNormalPattern  = "_N"
	DefaultBAMExtension   = ".sorted.bam"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".puremeth"
	}
	return filepath.Join(home, ".puremeth")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Extension: DefaultExtension,
			Group:     DefaultGroup,
		},
		Output: OutputConfig{
			Directory: DefaultOutputDir,
		},
		Patterns: PatternsConfig{
			Patient: DefaultPatientPattern,
			Tumor:   DefaultTumorPattern,
			Normal:  DefaultNormalPattern,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
