package sift

import (
	"errors"
	"fmt"
	"io"
)

// CompareOp enumerates the supported row comparisons.
type CompareOp int

const (
	CompareEq CompareOp = iota // ==
	CompareNe                  // !=
	CompareGt                  // >
	CompareLt                  // <
)

// ParseCompareOp maps the CLI spelling of a comparison to its op.
func ParseCompareOp(s string) (CompareOp, error) {
	switch s {
	case "==":
		return CompareEq, nil
	case "!=":
		return CompareNe, nil
	case ">":
		return CompareGt, nil
	case "<":
		return CompareLt, nil
	}
	return 0, fmt.Errorf("comparison must be '==', '!=', '>' or '<', got %q", s)
}

// Condition pairs a column index with a comparison against a fixed value.
// Comparisons operate on the raw cell string; values are never coerced to
// numbers, so ordering follows lexicographic string order.
type Condition struct {
	Column int
	Op     CompareOp
	Value  string
}

func (c Condition) matches(cell string) bool {
	switch c.Op {
	case CompareEq:
		return cell == c.Value
	case CompareNe:
		return cell != c.Value
	case CompareGt:
		return cell > c.Value
	case CompareLt:
		return cell < c.Value
	}
	return false
}

// MatchRows reads every row from r and collects the rows satisfying any of
// the given conditions, in encounter order. The first row is the header
// and is never matched. An empty condition list returns empty results
// without reading a single row. A condition column beyond a row's length
// is an error.
func MatchRows(r RowReader, conds []Condition) (header []string, matches [][]string, err error) {
	if len(conds) == 0 {
		return nil, nil, nil
	}

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

		for _, c := range conds {
			if c.Column >= len(row) {
				return nil, nil, fmt.Errorf("match column %d out of range for row with %d columns", c.Column, len(row))
			}
			if c.matches(row[c.Column]) {
				matches = append(matches, row)
				break
			}
		}
	}

	return header, matches, nil
}
