package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"csvsift/pkg/archive"
	"csvsift/pkg/config"
	"csvsift/pkg/sift"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Files FileOptions
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List matching archives and their columns",
		Long: `List the archives a date selection would process, and for each one print
its CSV member name, a sniffed delimiter, the header with zero-based
column indices, and the data row count.

Use it to pick values for --match-column, --timestamp-column and
--output-columns before a find or sample run. Nothing is written.

Example:
  csvsift inspect --file-folder /data/drops --file-prefix Trades \
    --file-date 20240101`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts)
		},
	}

	AddFileFlags(cmd, &opts.Files)

	return cmd
}

func runInspect(cmd *cobra.Command, opts *InspectOptions) error {
	out := cmd.OutOrStdout()

	cfg, err := BuildConfig(cmd, &opts.Files)
	if err != nil {
		return err
	}
	if err := config.ValidateSelection(cfg); err != nil {
		return err
	}

	found := 0

	for _, date := range cfg.Dates() {
		pattern := sift.BuildFileGlob(cfg.FilePrefix, sift.FileDate(date), cfg.FilePostfix, cfg.FileExtension)
		if opts.Files.Verbose > 0 {
			fmt.Fprintf(out, "Looking for file glob %q for date %s\n", pattern, sift.FileDate(date))
		}

		files, err := sift.LocateFiles(cfg.FileFolder, pattern)
		if err != nil {
			return err
		}

		for _, zipPath := range files {
			found++
			if err := inspectArchive(out, zipPath, cfg); err != nil {
				return err
			}
		}
	}

	if found == 0 {
		return errors.New("no archives matched the date selection")
	}

	return nil
}

func inspectArchive(out io.Writer, zipPath string, cfg *config.Config) error {
	fmt.Fprintf(out, "%s\n", zipPath)
	fmt.Fprintf(out, "  member: %s\n", archive.MemberName(zipPath, cfg.FileExtension))

	if sniffed, err := archive.SniffDelimiter(zipPath, cfg.FileExtension); err == nil {
		fmt.Fprintf(out, "  sniffed delimiter: %q (%d columns, %.0f%% of sampled lines)\n",
			sniffed.Delimiter, sniffed.Columns, sniffed.Confidence*100)
	}

	header, rows, err := readShape(zipPath, cfg)
	if err != nil {
		return err
	}

	for i, name := range header {
		fmt.Fprintf(out, "  [%d] %s\n", i, name)
	}
	fmt.Fprintf(out, "  data rows: %d\n", rows)

	return nil
}

// readShape reads the member once with the configured delimiter, keeping
// the header and counting the data rows.
func readShape(zipPath string, cfg *config.Config) (header []string, rows int, err error) {
	r, err := archive.Open(zipPath, cfg.FileExtension, cfg.FileDelim())
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for i := 0; ; i++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading row %d of %s: %w", i, zipPath, err)
		}
		if i == 0 {
			header = row
			continue
		}
		rows++
	}

	return header, rows, nil
}
