package parity

import (
	"fmt"

	"github.com/katalvlaran/nucleo/nucleotide"
)

// Build validates the input sequences and produces the parity-augmented
// Block described in the package documentation. It is atomic: on any error
// no partially-built block escapes. It is pure with respect to its inputs —
// data bases are canonicalized copies and the caller's slice is never
// retained.
//
// Errors: ErrEmptyInput, ErrRowLengthMismatch, or a wrapped
// nucleotide.ErrInvalidBase naming the offending row and position.
// Complexity: O(rows×cols) time and memory.
func Build(sequences []string) (*Block, error) {
	// 1. Validate shape before touching any cell.
	if len(sequences) == 0 || len(sequences[0]) == 0 {
		return nil, ErrEmptyInput
	}
	dataRows, dataCols := len(sequences), len(sequences[0])
	for _, s := range sequences[1:] {
		if len(s) == 0 {
			return nil, ErrEmptyInput
		}
		if len(s) != dataCols {
			return nil, ErrRowLengthMismatch
		}
	}

	// 2. Allocate the augmented matrix.
	cells := make([][]byte, dataRows+1)
	for i := range cells {
		cells[i] = make([]byte, dataCols+1)
	}

	// 3. Copy canonicalized data and compute row parities. The corner is
	// derived from the running total of ALL data digits, not from either
	// margin, so its double redundancy is structural rather than assumed.
	totalSum := 0
	for i, s := range sequences {
		rowSum := 0
		for j := 0; j < dataCols; j++ {
			base, err := nucleotide.Canonical(s[j])
			if err != nil {
				return nil, fmt.Errorf("sequence %d, position %d: %w", i, j, err)
			}
			digit, err := nucleotide.ToDigit(base)
			if err != nil {
				return nil, fmt.Errorf("sequence %d, position %d: %w", i, j, err)
			}
			cells[i][j] = base
			rowSum += int(digit)
		}
		totalSum += rowSum
		cells[i][dataCols] = mustBase(rowSum % nucleotide.Modulus)
	}

	// 4. Compute column parities from the stored (already validated) data.
	for j := 0; j < dataCols; j++ {
		colSum := 0
		for i := 0; i < dataRows; i++ {
			digit, err := nucleotide.ToDigit(cells[i][j])
			if err != nil {
				return nil, fmt.Errorf("sequence %d, position %d: %w", i, j, err)
			}
			colSum += int(digit)
		}
		cells[dataRows][j] = mustBase(colSum % nucleotide.Modulus)
	}

	// 5. Corner: total data digit sum mod 4.
	cells[dataRows][dataCols] = mustBase(totalSum % nucleotide.Modulus)

	return &Block{cells: cells, dataRows: dataRows, dataCols: dataCols}, nil
}

// mustBase converts a digit already reduced mod 4 to its base. A failure
// here is a programmer error, never a user-triggered condition.
func mustBase(digit int) byte {
	b, err := nucleotide.FromDigit(uint8(digit))
	if err != nil {
		panic(fmt.Sprintf("parity: internal digit %d out of range: %v", digit, err))
	}

	return b
}
