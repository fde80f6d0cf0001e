// Package parity defines the Block container and the Result/Status types
// shared by the builder and the detector/corrector.
package parity

import (
	"fmt"
	"strings"
)

// Status classifies the outcome of DetectAndCorrect.
type Status int

const (
	// StatusOK means every stored parity agrees with its recomputed value;
	// the block was not touched.
	StatusOK Status = iota

	// StatusCorrected means exactly one corrupted cell was identified and
	// overwritten with the unique value satisfying all parities.
	StatusCorrected

	// StatusUnrecoverable means the mismatch pattern cannot be explained by
	// exactly one corrupted cell; the block was not touched.
	StatusUnrecoverable

	// StatusInvalidInput means the block itself is malformed (too small, or
	// a cell that does not decode to a base); the block was not touched.
	StatusInvalidInput
)

// String renders the status for logs and demos.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCorrected:
		return "corrected"
	case StatusUnrecoverable:
		return "unrecoverable"
	case StatusInvalidInput:
		return "invalid input"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the single return value of DetectAndCorrect.
// Row and Col name the repaired cell when Status==StatusCorrected and are
// -1 otherwise.
type Result struct {
	Status Status
	Row    int
	Col    int
}

// Block is a parity-augmented matrix of canonical uppercase bases.
// The data region spans rows [0,DataRows) × columns [0,DataCols); the last
// column holds row parities, the last row holds column parities, and the
// shared corner holds the total parity. Blocks are created by Build and are
// the sole mutable artifact thereafter: external code may corrupt cells via
// Set, and DetectAndCorrect may repair one in place. Not safe for
// concurrent mutation; distinct Blocks are fully independent.
type Block struct {
	cells    [][]byte
	dataRows int
	dataCols int
}

// TotalRows returns the augmented row count (DataRows + 1).
func (b *Block) TotalRows() int { return b.dataRows + 1 }

// TotalCols returns the augmented column count (DataCols + 1).
func (b *Block) TotalCols() int { return b.dataCols + 1 }

// DataRows returns the number of data rows (input sequences).
func (b *Block) DataRows() int { return b.dataRows }

// DataCols returns the length of each data row.
func (b *Block) DataCols() int { return b.dataCols }

// At returns the base stored at (row, col), or ErrOutOfRange.
func (b *Block) At(row, col int) (byte, error) {
	if !b.inBounds(row, col) {
		return 0, fmt.Errorf("at (%d,%d): %w", row, col, ErrOutOfRange)
	}

	return b.cells[row][col], nil
}

// Set overwrites the cell at (row, col), simulating corruption of a stored
// or transmitted block. ASCII letters are folded to uppercase; the value is
// otherwise written as given, so a byte outside the alphabet is possible
// and will surface as StatusInvalidInput on the next DetectAndCorrect.
func (b *Block) Set(row, col int, base byte) error {
	if !b.inBounds(row, col) {
		return fmt.Errorf("set (%d,%d): %w", row, col, ErrOutOfRange)
	}
	if base >= 'a' && base <= 'z' {
		base = base - 'a' + 'A'
	}
	b.cells[row][col] = base

	return nil
}

// Clone returns an independent deep copy of the block.
func (b *Block) Clone() *Block {
	cells := make([][]byte, len(b.cells))
	for i, row := range b.cells {
		cells[i] = make([]byte, len(row))
		copy(cells[i], row)
	}

	return &Block{cells: cells, dataRows: b.dataRows, dataCols: b.dataCols}
}

// Equal reports whether two blocks hold identical cells.
func (b *Block) Equal(other *Block) bool {
	if other == nil || b.dataRows != other.dataRows || b.dataCols != other.dataCols {
		return false
	}
	for i, row := range b.cells {
		if string(row) != string(other.cells[i]) {
			return false
		}
	}

	return true
}

// String renders the block for inspection: TotalRows lines of TotalCols
// bases each, newline-terminated, no other delimiters. The output is meant
// for humans and demos; nothing in the core parses it back.
func (b *Block) String() string {
	var sb strings.Builder
	sb.Grow(b.TotalRows() * (b.TotalCols() + 1))
	for _, row := range b.cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// inBounds reports whether (row, col) addresses a cell of the block.
func (b *Block) inBounds(row, col int) bool {
	return row >= 0 && row < len(b.cells) && col >= 0 && col < b.dataCols+1
}
