package sift

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// strftime directives the timestamp options accept, mapped to Go
// reference-time fragments.
var strftimeToLayout = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
}

// TranslateTimeFormat converts a strftime-style format string, as the
// timestamp options spell it, into a Go time layout. An unsupported
// directive is an error.
func TranslateTimeFormat(format string) (string, error) {
	var layout strings.Builder

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			layout.WriteByte(c)
			continue
		}

		i++
		if i >= len(format) {
			return "", errors.New("timestamp format ends with a dangling '%'")
		}
		if format[i] == '%' {
			layout.WriteByte('%')
			continue
		}

		frag, ok := strftimeToLayout[format[i]]
		if !ok {
			return "", fmt.Errorf("unsupported timestamp directive %%%c", format[i])
		}
		layout.WriteString(frag)
	}

	return layout.String(), nil
}

// ParseDelta parses an "HH:MM:SS" interval into a duration.
func ParseDelta(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("delta must be HH:MM:SS, got %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("bad hours in delta %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("bad minutes in delta %q: %w", s, err)
	}
	seconds, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("bad seconds in delta %q: %w", s, err)
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second, nil
}
