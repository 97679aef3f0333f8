package commands

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"csvsift/pkg/archive"
	"csvsift/pkg/config"
	"csvsift/pkg/output"
	"csvsift/pkg/sift"
)

// SampleOptions holds command-line options for the sample command.
type SampleOptions struct {
	Files FileOptions

	TimestampColumn int
	TimestampFormat string
	TimestampDelta  string
}

// NewSampleCommand creates the sample command.
func NewSampleCommand() *cobra.Command {
	opts := &SampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Downsample rows to one per minimum time interval",
		Long: `Walk the zipped CSV drops of a date or date range and keep one row per
minimum time interval, judged by a timestamp column, into one consolidated
CSV.

Each archive is sampled independently: the first data row is always kept,
and a later row is kept only once it is strictly past the previously kept
row's timestamp plus --timestamp-delta. The interval does not carry over
between archives. Samples are streamed to the output file as each archive
is processed; the header is written once, from the first archive.

The timestamp format uses strftime directives, e.g. "%H:%M:%S" or the
default 12-hour "%I:%M:%S %p".

Example:
  csvsift sample --file-folder /data/drops --file-prefix Ticks \
    --file-start-date 20240101 --file-end-date 20240107 \
    --timestamp-column 1 --timestamp-delta 00:05:00 \
    --output-folder /data/out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(cmd, opts)
		},
	}

	AddFileFlags(cmd, &opts.Files)
	AddOutputFlags(cmd, &opts.Files)
	cmd.Flags().IntVar(&opts.TimestampColumn, "timestamp-column", 0, "Column holding each row's timestamp, zero based")
	cmd.Flags().StringVar(&opts.TimestampFormat, "timestamp-format", config.DefaultTimestampFormat, "strftime format of the timestamp column")
	cmd.Flags().StringVar(&opts.TimestampDelta, "timestamp-delta", config.DefaultTimestampDelta, "Minimum HH:MM:SS interval between kept rows")
	_ = cmd.MarkFlagRequired("timestamp-column")

	return cmd
}

func runSample(cmd *cobra.Command, opts *SampleOptions) error {
	out := cmd.OutOrStdout()

	cfg, err := BuildConfig(cmd, &opts.Files)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if opts.TimestampColumn <= 0 {
		return errors.New("--timestamp-column needs to be a positive integer")
	}
	layout, err := sift.TranslateTimeFormat(opts.TimestampFormat)
	if err != nil {
		return err
	}
	delta, err := sift.ParseDelta(opts.TimestampDelta)
	if err != nil {
		return err
	}

	samplerCfg := sift.SamplerConfig{
		TimestampColumn: opts.TimestampColumn,
		TimestampLayout: layout,
		TimestampDelta:  delta,
	}

	outputPath := output.Filename(cfg.OutputFolder, "Samples",
		cfg.FilePrefix, cfg.FileDate, cfg.FileStartDate, cfg.FileEndDate, cfg.FilePostfix)
	fmt.Fprintf(out, "Writing to: %s\n", outputPath)

	// The sampler streams: the output file stays open for the whole run.
	w, err := output.Create(outputPath, cfg.OutputDelim(), cfg.Columns())
	if err != nil {
		return err
	}
	if err := streamSamples(out, cfg, samplerCfg, w, opts.Files.Verbose); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func streamSamples(out io.Writer, cfg *config.Config, samplerCfg sift.SamplerConfig, w *output.Writer, v int) error {
	var header []string

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

			fileHeader, samples, err := sampleArchive(zipPath, cfg, samplerCfg)
			if err != nil {
				return err
			}

			if err := w.WriteHeader(fileHeader); err != nil {
				return err
			}
			if header == nil {
				header = fileHeader
			}
			if !slices.Equal(header, fileHeader) {
				fmt.Fprintln(out, "WARNING: CSV headers are different between ZIP files?")
			}

			if v > 0 {
				fmt.Fprintf(out, "Sampled %d rows in %s\n", len(samples), zipPath)
			}
			for _, s := range samples {
				if err := w.WriteRow(s.Row); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// sampleArchive opens one archive, samples its CSV member and closes it
// again, whatever happened in between.
func sampleArchive(zipPath string, cfg *config.Config, samplerCfg sift.SamplerConfig) (header []string, samples []sift.Sample, err error) {
	r, err := archive.Open(zipPath, cfg.FileExtension, cfg.FileDelim())
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return sift.SampleRows(r, samplerCfg)
}
