package config

import (
	"fmt"

	"github.com/puremeth/puremeth-go/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Scan     ScanConfig     `mapstructure:"scan" yaml:"scan"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Patterns PatternsConfig `mapstructure:"patterns" yaml:"patterns"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ScanConfig contains directory scan settings
type ScanConfig struct {
	Extension string `mapstructure:"extension" yaml:"extension"`
	Group     string `mapstructure:"group" yaml:"group"`
	Progress  bool   `mapstructure:"progress" yaml:"progress"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	Overwrite bool   `mapstructure:"overwrite" yaml:"overwrite"`
	DryRun    bool   `mapstructure:"dry_run" yaml:"dry_run"`
}

// PatternsConfig contains patient and condition detection patterns
type PatternsConfig struct {
	Patient    string              `mapstructure:"patient" yaml:"patient"`
	Tumor      string              `mapstructure:"tumor" yaml:"tumor"`
	Normal     string              `mapstructure:"normal" yaml:"normal"`
	Conditions map[string][]string `mapstructure:"conditions" yaml:"conditions"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and applies defaults for invalid
// values
func (c *Config) Validate() error {
	if c.Scan.Extension == "" {
		c.Scan.Extension = DefaultExtension
	}
	if _, err := domain.ParseGroupStrategy(c.Scan.Group); err != nil {
		return fmt.Errorf("invalid scan.group: %w", err)
	}
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// ConditionPatterns returns the configured condition patterns, falling back
// to the tumor/normal defaults
func (c *Config) ConditionPatterns() domain.ConditionPatterns {
	if len(c.Patterns.Conditions) == 0 {
		return domain.DefaultConditionPatterns()
	}
	return domain.ConditionPatterns(c.Patterns.Conditions)
}
