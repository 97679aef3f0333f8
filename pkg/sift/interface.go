// Package sift implements the row-selection core: glob construction for
// dated archive names, column projection, match filtering, and time-delta
// sampling.
package sift

// RowReader yields one delimited row at a time and reports io.EOF when the
// source is exhausted. encoding/csv's Reader satisfies it; the archive
// package provides one per ZIP member. Implementations need only support
// sequential access.
type RowReader interface {
	Read() ([]string, error)
}
