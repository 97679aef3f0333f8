package commands

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"csvsift/pkg/archive"
	"csvsift/pkg/config"
	"csvsift/pkg/output"
	"csvsift/pkg/sift"
)

// FindOptions holds command-line options for the find command.
type FindOptions struct {
	Files FileOptions

	MatchColumn     int
	MatchComparison string
	MatchValue      string
}

// NewFindCommand creates the find command.
func NewFindCommand() *cobra.Command {
	opts := &FindOptions{}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Extract rows matching a column comparison",
		Long: `Extract every row whose column compares against a value, from the zipped
CSV drops of a date or date range, into one consolidated CSV.

Archives are located by composing a filename glob from --file-prefix, each
selected date, --file-postfix and --file-extension. The CSV member inside
each archive carries the archive's base name with the extension swapped
for ".csv". Matches from all archives are collected first and written in
one pass at the end, under the first archive's header.

Comparisons operate on the raw cell text; "10" sorts before "9".

Example:
  csvsift find --file-folder /data/drops --file-prefix Trades \
    --file-date 20240101 --match-column 3 --match-comparison == \
    --match-value FILLED --output-folder /data/out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, opts)
		},
	}

	AddFileFlags(cmd, &opts.Files)
	AddOutputFlags(cmd, &opts.Files)
	cmd.Flags().IntVar(&opts.MatchColumn, "match-column", 0, "Column the comparison is performed on, zero based")
	cmd.Flags().StringVar(&opts.MatchComparison, "match-comparison", "", "Comparison to perform: '==', '!=', '>' or '<'")
	cmd.Flags().StringVar(&opts.MatchValue, "match-value", "", "Value the comparison is performed against")
	_ = cmd.MarkFlagRequired("match-column")
	_ = cmd.MarkFlagRequired("match-comparison")
	_ = cmd.MarkFlagRequired("match-value")

	return cmd
}

func runFind(cmd *cobra.Command, opts *FindOptions) error {
	out := cmd.OutOrStdout()

	cfg, err := BuildConfig(cmd, &opts.Files)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if opts.MatchColumn <= 0 {
		return errors.New("--match-column needs to be a positive integer")
	}
	op, err := sift.ParseCompareOp(opts.MatchComparison)
	if err != nil {
		return err
	}
	conds := []sift.Condition{{Column: opts.MatchColumn, Op: op, Value: opts.MatchValue}}

	v := opts.Files.Verbose
	if v > 0 {
		fmt.Fprintf(out, "Match conditions: column %d %s %q\n", opts.MatchColumn, opts.MatchComparison, opts.MatchValue)
	}

	var header []string
	var matches [][]string

	for _, date := range cfg.Dates() {
		pattern := sift.BuildFileGlob(cfg.FilePrefix, sift.FileDate(date), cfg.FilePostfix, cfg.FileExtension)
		if v > 0 {
			fmt.Fprintf(out, "Looking for file glob %q for date %s\n", pattern, sift.FileDate(date))
		}

		files, err := sift.LocateFiles(cfg.FileFolder, pattern)
		if err != nil {
			return err
		}

		for _, zipPath := range files {
			fmt.Fprintf(out, "Processing: %s\n", zipPath)

			fileHeader, fileMatches, err := matchArchive(zipPath, cfg, conds)
			if err != nil {
				return err
			}

			if header == nil {
				header = fileHeader
			}
			if !slices.Equal(header, fileHeader) {
				fmt.Fprintln(out, "WARNING: CSV headers are different between ZIP files?")
			}

			if v > 0 && len(fileMatches) > 0 {
				fmt.Fprintf(out, "Matched %d rows in %s\n", len(fileMatches), zipPath)
			}
			matches = append(matches, fileMatches...)
		}
	}

	outputPath := output.Filename(cfg.OutputFolder, "Matches",
		cfg.FilePrefix, cfg.FileDate, cfg.FileStartDate, cfg.FileEndDate, cfg.FilePostfix)
	fmt.Fprintf(out, "Writing to: %s\n", outputPath)

	w, err := output.Create(outputPath, cfg.OutputDelim(), cfg.Columns())
	if err != nil {
		return err
	}
	if err := writeMatches(w, header, matches); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func writeMatches(w *output.Writer, header []string, matches [][]string) error {
	if err := w.WriteHeader(header); err != nil {
		return err
	}
	for _, row := range matches {
		if err := w.WriteRow(row); err != nil {
			return err
		}
	}
	return nil
}

// matchArchive opens one archive, runs the matcher over its CSV member and
// closes it again, whatever happened in between.
func matchArchive(zipPath string, cfg *config.Config, conds []sift.Condition) (header []string, matches [][]string, err error) {
	r, err := archive.Open(zipPath, cfg.FileExtension, cfg.FileDelim())
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return sift.MatchRows(r, conds)
}
