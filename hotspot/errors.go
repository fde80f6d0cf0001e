// Package hotspot: sentinel error set, matched via errors.Is.
package hotspot

import "errors"

var (
	// ErrUnexpectedLine indicates a line that is not the start of a hotspot
	// record where one was required.
	ErrUnexpectedLine = errors.New("hotspot: unexpected line")

	// ErrBadPositions indicates an empty or unparsable hotspot position list.
	ErrBadPositions = errors.New("hotspot: malformed position list")

	// ErrMissingReference indicates a record without a Reference line.
	ErrMissingReference = errors.New("hotspot: missing Reference line after Hotspot Positions")

	// ErrEmptyTSV indicates a TSV input without a header line.
	ErrEmptyTSV = errors.New("hotspot: TSV input is empty or unreadable")

	// ErrNoSequenceColumn indicates a TSV header without any recognized DNA
	// string column.
	ErrNoSequenceColumn = errors.New("hotspot: TSV must contain a column with DNA strings")

	// ErrMissingSequence indicates a TSV row whose sequence cell is empty.
	ErrMissingSequence = errors.New("hotspot: row without a DNA sequence")
)
