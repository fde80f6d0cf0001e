package hotspot

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SequenceRecord is one row of the preprocessing pipeline's TSV export.
// Positions and Reference are carried verbatim (they may be absent);
// Sequence is mandatory.
type SequenceRecord struct {
	ID        string
	Positions string
	Reference string
	Sequence  string
}

// Column kinds recognized in the TSV header.
const (
	colID = iota
	colPositions
	colReference
	colSequence
	colUnknown
)

// columnKind classifies a header cell, case-insensitively, accepting the
// aliases the preprocessing pipeline has emitted over time.
func columnKind(name string) int {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "record_id", "id", "hotspot_id":
		return colID
	case "hotspot_positions", "positions":
		return colPositions
	case "reference", "reference_sequence":
		return colReference
	case "hotspot_string", "hotspot_sequence", "sequence", "dna_string":
		return colSequence
	default:
		return colUnknown
	}
}

// LoadSequenceTSV reads the tab-separated hotspot sequence export from r.
// The first line must be a header naming at least a DNA string column;
// '#'-prefixed and blank rows are skipped; rows missing an ID cell get a
// generated record_N identifier (N counts accepted rows from zero).
func LoadSequenceTSV(r io.Reader) ([]SequenceRecord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("hotspot: read header: %w", err)
		}

		return nil, ErrEmptyTSV
	}

	idIdx, positionsIdx, referenceIdx, sequenceIdx := -1, -1, -1, -1
	for i, cell := range strings.Split(strings.TrimSpace(sc.Text()), "\t") {
		switch columnKind(cell) {
		case colID:
			idIdx = i
		case colPositions:
			positionsIdx = i
		case colReference:
			referenceIdx = i
		case colSequence:
			sequenceIdx = i
		}
	}
	if sequenceIdx < 0 {
		return nil, ErrNoSequenceColumn
	}

	cellAt := func(cells []string, idx int) string {
		if idx >= 0 && idx < len(cells) {
			return strings.TrimSpace(cells[idx])
		}

		return ""
	}

	var records []SequenceRecord
	row := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cells := strings.Split(line, "\t")

		rec := SequenceRecord{
			ID:        cellAt(cells, idIdx),
			Positions: cellAt(cells, positionsIdx),
			Reference: cellAt(cells, referenceIdx),
			Sequence:  cellAt(cells, sequenceIdx),
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("record_%d", row)
		}
		if rec.Sequence == "" {
			return nil, fmt.Errorf("row %d: %w", row+1, ErrMissingSequence)
		}

		records = append(records, rec)
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("hotspot: read: %w", err)
	}

	return records, nil
}
