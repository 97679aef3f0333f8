// Package output writes the consolidated CSV a run produces.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"csvsift/pkg/sift"
)

// Writer serializes the header once, then every selected row, applying an
// optional column projection to header and rows alike. Lines end with a
// bare newline regardless of platform.
type Writer struct {
	file          *os.File
	rows          *csv.Writer
	columns       *sift.ColumnSpec
	headerWritten bool
}

// Create opens the destination file for writing, truncating anything
// already there. A nil columns spec writes rows unprojected.
func Create(path string, delimiter rune, columns *sift.ColumnSpec) (*Writer, error) {
	f, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", path, err)
	}

	rows := csv.NewWriter(f)
	rows.Comma = delimiter

	return &Writer{file: f, rows: rows, columns: columns}, nil
}

// WriteHeader writes the header row unless one has been written already.
func (w *Writer) WriteHeader(header []string) error {
	if w.headerWritten {
		return nil
	}
	w.headerWritten = true
	return w.write(header)
}

// WriteRow writes a single selected row.
func (w *Writer) WriteRow(row []string) error {
	return w.write(row)
}

func (w *Writer) write(row []string) error {
	out := row
	if w.columns != nil {
		var err error
		out, err = w.columns.Apply(row)
		if err != nil {
			return err
		}
	}

	if err := w.rows.Write(out); err != nil {
		return fmt.Errorf("writing output row: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the destination file.
func (w *Writer) Close() error {
	w.rows.Flush()
	if err := w.rows.Error(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("flushing output: %w", err)
	}
	return w.file.Close()
}

// Filename builds the consolidated output path:
// <literal>[_prefix][_date | _start-end][_postfix].csv under folder.
// The literal names the run kind ("Matches", "Samples").
func Filename(folder, literal, prefix, date, startDate, endDate, postfix string) string {
	parts := []string{literal}

	if prefix != "" {
		parts = append(parts, prefix)
	}

	if date != "" {
		parts = append(parts, date)
	} else if startDate != "" && endDate != "" {
		parts = append(parts, startDate+"-"+endDate)
	}

	if postfix != "" {
		parts = append(parts, postfix)
	}

	return filepath.Join(folder, strings.Join(parts, "_")+".csv")
}
