package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"csvsift/pkg/sift"
)

// Load builds a configuration from defaults, the optional YAML file at
// path (skipped when path is empty), and CSVSIFT_* environment variables,
// in that order. Flag overrides are the caller's concern. The result is
// not yet validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("reading environment overrides: %w", err)
	}

	return cfg, nil
}

// ValidateSelection checks the file-selection half of the configuration
// and populates the normalized input delimiter and the expanded dates.
func ValidateSelection(cfg *Config) error {
	if cfg.FileFolder == "" {
		return errors.New("file_folder: a folder to search is required")
	}

	delim, err := normalizeDelimiter(cfg.FileDelimiter)
	if err != nil {
		return fmt.Errorf("file_delimiter: %w", err)
	}
	cfg.fileDelimiter = delim

	dates, err := sift.ExpandDates(cfg.FileDate, cfg.FileStartDate, cfg.FileEndDate)
	if err != nil {
		return fmt.Errorf("file dates: %w", err)
	}
	cfg.dates = dates

	return nil
}

// Validate checks the whole configuration: the file selection plus the
// output settings, parsing the column spec when one is given.
func Validate(cfg *Config) error {
	if err := ValidateSelection(cfg); err != nil {
		return err
	}

	if cfg.OutputFolder == "" {
		return errors.New("output_folder: a folder to write to is required")
	}

	delim, err := normalizeDelimiter(cfg.OutputDelimiter)
	if err != nil {
		return fmt.Errorf("output_delimiter: %w", err)
	}
	cfg.outputDelimiter = delim

	if cfg.OutputColumns != "" {
		columns, err := sift.ParseColumnSpec(cfg.OutputColumns)
		if err != nil {
			return fmt.Errorf("output_columns: %w", err)
		}
		cfg.columns = columns
	}

	return nil
}

// normalizeDelimiter resolves the "csv"/"tsv" aliases and rejects anything
// that is not exactly one character.
func normalizeDelimiter(s string) (rune, error) {
	switch s {
	case "csv":
		return ',', nil
	case "tsv":
		return '\t', nil
	}

	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}
