package hotspot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line prefixes of the block-structured record format.
const (
	positionsPrefix = "Hotspot Positions:"
	referencePrefix = "Reference:"
	alternatePrefix = "Alternate:"
)

// Record is one parsed hotspot: SNP positions within a window, the
// reference sequence, and an optional alternate sequence.
type Record struct {
	Positions []int
	Reference string
	Alternate string
}

// Plaintext renders the canonical metadata block for this record — the
// exact bytes the sealing subsystem encrypts. The alternate, when present,
// travels in the unencrypted sidecar instead.
func (r Record) Plaintext() string {
	positions := make([]string, len(r.Positions))
	for i, p := range r.Positions {
		positions[i] = strconv.Itoa(p)
	}

	return fmt.Sprintf("Hotspot Positions: %s\nReference: %s\n",
		strings.Join(positions, ","), r.Reference)
}

// ParseRecords reads every record from r. Blank lines are skipped; each
// record is a "Hotspot Positions:" line, a "Reference:" line, and an
// optional "Alternate:" line. Parsing is all-or-nothing: the first
// malformed record fails the whole read with line context.
func ParseRecords(r io.Reader) ([]Record, error) {
	lines, err := contentLines(r)
	if err != nil {
		return nil, err
	}

	var records []Record
	for i := 0; i < len(lines); {
		line := lines[i]
		if !strings.HasPrefix(line, positionsPrefix) {
			return nil, fmt.Errorf("line %q: %w", line, ErrUnexpectedLine)
		}
		positions, err := parsePositions(strings.TrimPrefix(line, positionsPrefix))
		if err != nil {
			return nil, err
		}
		i++

		if i >= len(lines) || !strings.HasPrefix(lines[i], referencePrefix) {
			return nil, ErrMissingReference
		}
		rec := Record{
			Positions: positions,
			Reference: strings.TrimSpace(strings.TrimPrefix(lines[i], referencePrefix)),
		}
		i++

		// Alternate is optional; a Positions line here starts the next record.
		if i < len(lines) && strings.HasPrefix(lines[i], alternatePrefix) {
			rec.Alternate = strings.TrimSpace(strings.TrimPrefix(lines[i], alternatePrefix))
			i++
		}

		records = append(records, rec)
	}

	return records, nil
}

// parsePositions parses a comma-separated, whitespace-tolerant list of
// non-negative integers; an empty list is malformed.
func parsePositions(s string) ([]int, error) {
	var positions []int
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		v, err := strconv.Atoi(token)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("token %q: %w", token, ErrBadPositions)
		}
		positions = append(positions, v)
	}
	if len(positions) == 0 {
		return nil, ErrBadPositions
	}

	return positions, nil
}

// contentLines collects trimmed, non-blank lines.
func contentLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("hotspot: read: %w", err)
	}

	return lines, nil
}
