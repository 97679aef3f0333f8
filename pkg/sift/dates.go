package sift

import (
	"errors"
	"fmt"
	"time"
)

// FileDateLayout is the date format used in archive filenames (YYYYMMDD).
const FileDateLayout = "20060102"

// ExpandDates turns the CLI date selection into the ordered list of days to
// scan. A single date wins over the range pair; the range is inclusive on
// both ends and walks day by day. Neither form present is an error.
func ExpandDates(single, start, end string) ([]time.Time, error) {
	if single != "" {
		d, err := time.Parse(FileDateLayout, single)
		if err != nil {
			return nil, fmt.Errorf("parsing date %q: %w", single, err)
		}
		return []time.Time{d}, nil
	}

	if start != "" && end != "" {
		from, err := time.Parse(FileDateLayout, start)
		if err != nil {
			return nil, fmt.Errorf("parsing start date %q: %w", start, err)
		}
		to, err := time.Parse(FileDateLayout, end)
		if err != nil {
			return nil, fmt.Errorf("parsing end date %q: %w", end, err)
		}

		var dates []time.Time
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
		return dates, nil
	}

	return nil, errors.New("either a single date or a start and end date is required")
}

// FileDate formats a day the way archive filenames spell it.
func FileDate(d time.Time) string {
	return d.Format(FileDateLayout)
}
