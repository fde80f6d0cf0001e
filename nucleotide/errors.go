// Package nucleotide: sentinel error set.
// All codec operations MUST return these sentinels and callers MUST match
// them via errors.Is. Context, when essential, is added with
// fmt.Errorf("ctx: %w", ErrX) at the call site; the sentinel stays matchable.
package nucleotide

import "errors"

var (
	// ErrInvalidBase indicates a character outside the {A,T,G,C} alphabet
	// (checked case-insensitively).
	ErrInvalidBase = errors.New("nucleotide: invalid base")

	// ErrDigitRange indicates a digit outside [0,4) passed to FromDigit.
	// Callers that respect the modulus never trigger it.
	ErrDigitRange = errors.New("nucleotide: digit out of range")

	// ErrEmptySequence indicates an empty string passed to ParseSequence.
	ErrEmptySequence = errors.New("nucleotide: sequence must be non-empty")
)
