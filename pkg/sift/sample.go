package sift

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// SamplerConfig carries everything the sampler needs for one run.
type SamplerConfig struct {
	// TimestampColumn is the zero-based column holding the row timestamp.
	TimestampColumn int

	// TimestampLayout is the Go time layout the column is parsed with.
	TimestampLayout string

	// TimestampDelta is the minimum interval between two emitted rows.
	TimestampDelta time.Duration
}

// Sample pairs a parsed timestamp with the row it was taken from.
type Sample struct {
	Timestamp time.Time
	Row       []string
}

// SampleRows reads every row from r and keeps the first data row plus each
// later row whose timestamp is strictly past the previous sample's
// timestamp plus the configured delta. The baseline starts fresh on every
// call, so each file is sampled independently of the ones before it.
//
// An unparsable timestamp is an error; rows are never skipped over.
func SampleRows(r RowReader, cfg SamplerConfig) (header []string, samples []Sample, err error) {
	for i := 0; ; i++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading row %d: %w", i, err)
		}

		if i == 0 {
			header = row
			continue
		}

		if cfg.TimestampColumn >= len(row) {
			return nil, nil, fmt.Errorf("timestamp column %d out of range for row with %d columns", cfg.TimestampColumn, len(row))
		}

		ts, err := time.Parse(cfg.TimestampLayout, row[cfg.TimestampColumn])
		if err != nil {
			return nil, nil, fmt.Errorf("parsing timestamp on row %d: %w", i, err)
		}

		// The source files carry a stray trailing character on every
		// line's final column, left over from their line-oriented
		// producer. Trim exactly one.
		if last := len(row) - 1; row[last] != "" {
			row[last] = row[last][:len(row[last])-1]
		}

		if len(samples) == 0 {
			samples = append(samples, Sample{Timestamp: ts, Row: row})
			continue
		}

		if samples[len(samples)-1].Timestamp.Add(cfg.TimestampDelta).Before(ts) {
			samples = append(samples, Sample{Timestamp: ts, Row: row})
		}
	}

	return header, samples, nil
}
