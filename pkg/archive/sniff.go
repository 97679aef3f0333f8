package archive

import (
	"bufio"
	"fmt"
	"strings"
)

// Delimiter candidates tried by the sniffer, in preference order for ties.
var sniffCandidates = []rune{',', '\t', ';', '|'}

const sniffSampleLines = 20

// SniffResult holds the outcome of delimiter detection on one archive.
type SniffResult struct {
	Delimiter    rune
	Columns      int     // column count the winning delimiter produces
	Confidence   float64 // fraction of sampled lines with that count
	SampledLines int
}

// SniffDelimiter samples the first lines of an archive's CSV member and
// picks the candidate delimiter that splits the most lines into the same
// column count greater than one. Sampling reads raw lines, so quoted
// fields containing a delimiter can skew the count; the result is a hint
// for choosing --file-delimiter, not a guarantee.
func SniffDelimiter(zipPath, extension string) (*SniffResult, error) {
	r, err := Open(zipPath, extension, ',')
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	scanner := bufio.NewScanner(r.member)
	var lines []string
	for scanner.Scan() && len(lines) < sniffSampleLines {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sampling %s: %w", zipPath, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("archive member of %s has no lines to sample", zipPath)
	}

	best := &SniffResult{SampledLines: len(lines)}
	bestAgree := 0

	for _, candidate := range sniffCandidates {
		counts := make(map[int]int)
		for _, line := range lines {
			counts[strings.Count(line, string(candidate))+1]++
		}

		// Most common column count for this candidate.
		var columns, agree int
		for c, n := range counts {
			if n > agree || (n == agree && c > columns) {
				columns, agree = c, n
			}
		}

		if columns > 1 && agree > bestAgree {
			best.Delimiter = candidate
			best.Columns = columns
			best.Confidence = float64(agree) / float64(len(lines))
			bestAgree = agree
		}
	}

	if best.Delimiter == 0 {
		return nil, fmt.Errorf("no candidate delimiter splits %s into columns", zipPath)
	}

	return best, nil
}
