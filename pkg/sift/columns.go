package sift

import (
	"fmt"
	"strconv"
	"strings"
)

// columnToken selects either a single column or a half-open column range.
type columnToken struct {
	start   int
	end     int
	isRange bool
}

// ColumnSpec is a parsed output-column specification: a comma-separated
// list of zero-based indices and "start-end" ranges (inclusive start,
// exclusive end). Tokens may repeat or reorder columns.
type ColumnSpec struct {
	tokens []columnToken
}

// ParseColumnSpec parses and validates a column specification string.
// Range tokens must satisfy start < end; all values must be non-negative.
func ParseColumnSpec(spec string) (*ColumnSpec, error) {
	if spec == "" {
		return nil, fmt.Errorf("column spec is empty")
	}

	var tokens []columnToken

	for _, token := range strings.Split(spec, ",") {
		if strings.Contains(token, "-") {
			parts := strings.SplitN(token, "-", 2)

			start, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, fmt.Errorf("bad range start in %q: %w", token, err)
			}
			end, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("bad range end in %q: %w", token, err)
			}

			if start < 0 {
				return nil, fmt.Errorf("negative range start in %q", token)
			}
			if start >= end {
				return nil, fmt.Errorf("bad range %q: start must be less than end", token)
			}

			tokens = append(tokens, columnToken{start: start, end: end, isRange: true})
			continue
		}

		index, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("bad column index %q: %w", token, err)
		}
		if index < 0 {
			return nil, fmt.Errorf("negative column index %q", token)
		}

		tokens = append(tokens, columnToken{start: index})
	}

	return &ColumnSpec{tokens: tokens}, nil
}

// Apply derives a new row from the spec's tokens, in token order.
// Range tokens use slice semantics: out-of-range ends are clipped and a
// start beyond the row contributes nothing. A single index beyond the row
// is an error; short rows must not be silently projected.
func (s *ColumnSpec) Apply(row []string) ([]string, error) {
	var out []string

	for _, t := range s.tokens {
		if t.isRange {
			start, end := t.start, t.end
			if start > len(row) {
				start = len(row)
			}
			if end > len(row) {
				end = len(row)
			}
			out = append(out, row[start:end]...)
			continue
		}

		if t.start >= len(row) {
			return nil, fmt.Errorf("column index %d out of range for row with %d columns", t.start, len(row))
		}
		out = append(out, row[t.start])
	}

	return out, nil
}
