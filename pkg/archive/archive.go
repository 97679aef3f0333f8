// Package archive opens zipped CSV drops and streams their rows.
package archive

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Reader streams delimited rows from the CSV member of a ZIP archive.
// The member shares the archive's base name with the file extension
// swapped for ".csv".
type Reader struct {
	zr     *zip.ReadCloser
	member io.ReadCloser
	rows   *csv.Reader
}

// Open opens the archive at zipPath and positions a row reader at the
// start of its CSV member. A missing member is an error. The caller must
// Close the reader on every path, including row read failures.
func Open(zipPath, extension string, delimiter rune) (*Reader, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", zipPath, err)
	}

	member, err := openMember(zr, MemberName(zipPath, extension))
	if err != nil {
		_ = zr.Close()
		return nil, err
	}

	rows := csv.NewReader(member)
	rows.Comma = delimiter
	rows.FieldsPerRecord = -1 // ragged rows are the matcher's concern

	return &Reader{zr: zr, member: member, rows: rows}, nil
}

// MemberName returns the expected CSV member name for an archive path:
// the base name with the archive extension swapped for ".csv".
func MemberName(zipPath, extension string) string {
	base := filepath.Base(zipPath)
	return strings.TrimSuffix(base, extension) + ".csv"
}

// Read returns the next row, or io.EOF once the member is exhausted.
func (r *Reader) Read() ([]string, error) {
	return r.rows.Read()
}

// Close releases the member stream and the archive.
func (r *Reader) Close() error {
	memberErr := r.member.Close()
	if err := r.zr.Close(); err != nil {
		return err
	}
	return memberErr
}

func openMember(zr *zip.ReadCloser, name string) (io.ReadCloser, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("opening member %s: %w", name, err)
			}
			return rc, nil
		}
	}
	return nil, fmt.Errorf("archive has no member named %s", name)
}
