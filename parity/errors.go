// Package parity: sentinel error set.
// Build and the Block accessors return ONLY these sentinels (plus wrapped
// nucleotide codec sentinels); tests match them via errors.Is. Detection
// outcomes are not errors — they are Result statuses — so nothing here
// overlaps with StatusUnrecoverable/StatusInvalidInput.
package parity

import "errors"

var (
	// ErrEmptyInput indicates zero sequences, or a zero-length sequence,
	// supplied to Build.
	ErrEmptyInput = errors.New("parity: input must contain at least one non-empty sequence")

	// ErrRowLengthMismatch indicates sequences of differing lengths
	// supplied to Build.
	ErrRowLengthMismatch = errors.New("parity: all sequences must have the same length")

	// ErrOutOfRange indicates an At/Set index outside the block bounds.
	ErrOutOfRange = errors.New("parity: cell index out of range")
)
