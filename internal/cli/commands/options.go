package commands

import (
	"github.com/spf13/cobra"

	"csvsift/pkg/config"
)

// FileOptions holds the file-selection and output flags shared by the
// find, sample and inspect commands.
type FileOptions struct {
	Config        string
	FileFolder    string
	FilePrefix    string
	FilePostfix   string
	FileExtension string
	FileDate      string
	FileStartDate string
	FileEndDate   string
	FileDelimiter string

	OutputFolder    string
	OutputColumns   string
	OutputDelimiter string

	Verbose int
}

// AddFileFlags registers the file-selection flags on a command.
func AddFileFlags(cmd *cobra.Command, opts *FileOptions) {
	cmd.Flags().StringVar(&opts.Config, "config", "", "Optional YAML run config supplying defaults for the file and output flags")
	cmd.Flags().StringVar(&opts.FileFolder, "file-folder", "", "Folder the archive files live in")
	cmd.Flags().StringVar(&opts.FilePrefix, "file-prefix", "", "Prefix of the archive filenames to process")
	cmd.Flags().StringVar(&opts.FilePostfix, "file-postfix", "", "Postfix of the archive filenames to process")
	cmd.Flags().StringVar(&opts.FileExtension, "file-extension", config.DefaultFileExtension, "Extension of the archive files to process")
	cmd.Flags().StringVar(&opts.FileDate, "file-date", "", "Single YYYYMMDD date to look for")
	cmd.Flags().StringVar(&opts.FileStartDate, "file-start-date", "", "Start of the YYYYMMDD date range to look for")
	cmd.Flags().StringVar(&opts.FileEndDate, "file-end-date", "", "End of the YYYYMMDD date range to look for")
	cmd.Flags().StringVar(&opts.FileDelimiter, "file-delimiter", config.DefaultDelimiter, "Delimiter that breaks a line into columns ('csv', 'tsv' or one character)")
	cmd.Flags().CountVarP(&opts.Verbose, "verbose", "v", "Increase diagnostic output (repeatable)")
}

// AddOutputFlags registers the output flags on a command.
func AddOutputFlags(cmd *cobra.Command, opts *FileOptions) {
	cmd.Flags().StringVar(&opts.OutputFolder, "output-folder", "", "Folder the consolidated CSV is written to")
	cmd.Flags().StringVar(&opts.OutputColumns, "output-columns", "", "Columns to output, zero based, e.g. 0,1,2,5-7")
	cmd.Flags().StringVar(&opts.OutputDelimiter, "output-delimiter", config.DefaultDelimiter, "Delimiter that joins output columns ('csv', 'tsv' or one character)")
}

// BuildConfig loads the optional run config and applies any flags the user
// changed on top of it. Validation is left to the caller, since inspect
// needs only the selection half.
func BuildConfig(cmd *cobra.Command, opts *FileOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("file-folder") {
		cfg.FileFolder = opts.FileFolder
	}
	if flags.Changed("file-prefix") {
		cfg.FilePrefix = opts.FilePrefix
	}
	if flags.Changed("file-postfix") {
		cfg.FilePostfix = opts.FilePostfix
	}
	if flags.Changed("file-extension") {
		cfg.FileExtension = opts.FileExtension
	}
	if flags.Changed("file-date") {
		cfg.FileDate = opts.FileDate
	}
	if flags.Changed("file-start-date") {
		cfg.FileStartDate = opts.FileStartDate
	}
	if flags.Changed("file-end-date") {
		cfg.FileEndDate = opts.FileEndDate
	}
	if flags.Changed("file-delimiter") {
		cfg.FileDelimiter = opts.FileDelimiter
	}
	if flags.Changed("output-folder") {
		cfg.OutputFolder = opts.OutputFolder
	}
	if flags.Changed("output-columns") {
		cfg.OutputColumns = opts.OutputColumns
	}
	if flags.Changed("output-delimiter") {
		cfg.OutputDelimiter = opts.OutputDelimiter
	}

	return cfg, nil
}
