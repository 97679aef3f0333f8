// Package config provides run configuration for csvsift: defaults, an
// optional YAML file, environment overrides, and validation.
package config

import (
	"time"

	"csvsift/pkg/sift"
)

// Config holds the shared file-selection and output settings of a run.
// Values are layered: defaults, then the optional YAML file, then
// CSVSIFT_* environment variables, then command-line flags.
type Config struct {
	// FileFolder is the directory the archive files live in.
	FileFolder string `yaml:"file_folder" envconfig:"FILE_FOLDER"`

	// FilePrefix and FilePostfix narrow the archive filename glob.
	FilePrefix  string `yaml:"file_prefix" envconfig:"FILE_PREFIX"`
	FilePostfix string `yaml:"file_postfix" envconfig:"FILE_POSTFIX"`

	// FileExtension is the archive extension; the CSV member inside each
	// archive carries the same base name with this swapped for ".csv".
	FileExtension string `yaml:"file_extension" envconfig:"FILE_EXTENSION"`

	// FileDate selects a single YYYYMMDD day. FileStartDate/FileEndDate
	// select an inclusive day range instead. One of the two forms is
	// required; the single date wins when both are given.
	FileDate      string `yaml:"file_date" envconfig:"FILE_DATE"`
	FileStartDate string `yaml:"file_start_date" envconfig:"FILE_START_DATE"`
	FileEndDate   string `yaml:"file_end_date" envconfig:"FILE_END_DATE"`

	// FileDelimiter splits member lines into columns. "csv" and "tsv"
	// are accepted as aliases; anything else must be one character.
	FileDelimiter string `yaml:"file_delimiter" envconfig:"FILE_DELIMITER"`

	// OutputFolder is where the consolidated CSV is written.
	OutputFolder string `yaml:"output_folder" envconfig:"OUTPUT_FOLDER"`

	// OutputColumns optionally selects and reorders output columns,
	// e.g. "0,1,2,5-7". Empty means all columns unchanged.
	OutputColumns string `yaml:"output_columns" envconfig:"OUTPUT_COLUMNS"`

	// OutputDelimiter joins output columns; same rules as FileDelimiter.
	OutputDelimiter string `yaml:"output_delimiter" envconfig:"OUTPUT_DELIMITER"`

	// Normalized values (populated during validation).
	fileDelimiter   rune
	outputDelimiter rune
	dates           []time.Time
	columns         *sift.ColumnSpec
}

// FileDelim returns the normalized input delimiter.
func (c *Config) FileDelim() rune {
	return c.fileDelimiter
}

// OutputDelim returns the normalized output delimiter.
func (c *Config) OutputDelim() rune {
	return c.outputDelimiter
}

// Dates returns the expanded date selection, in order.
func (c *Config) Dates() []time.Time {
	return c.dates
}

// Columns returns the parsed output column spec, or nil when unset.
func (c *Config) Columns() *sift.ColumnSpec {
	return c.columns
}
