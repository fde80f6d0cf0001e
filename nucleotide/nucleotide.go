package nucleotide

import "fmt"

// Canonical uppercase bases. The digit assignment (A=0, T=1, G=2, C=3) is
// the modulus-4 alphabet every parity computation in nucleo builds on.
const (
	BaseA byte = 'A'
	BaseT byte = 'T'
	BaseG byte = 'G'
	BaseC byte = 'C'
)

// Modulus is the alphabet size; every digit lives in [0, Modulus).
const Modulus = 4

// digitToBase is the inverse mapping, indexed by digit.
var digitToBase = [Modulus]byte{BaseA, BaseT, BaseG, BaseC}

// upper folds an ASCII lowercase letter to uppercase; other bytes pass through.
func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}

	return b
}

// ToDigit maps a base (case-insensitive) to its digit in [0,4).
// Returns ErrInvalidBase for any character outside the alphabet.
// Complexity: O(1).
func ToDigit(b byte) (uint8, error) {
	switch upper(b) {
	case BaseA:
		return 0, nil
	case BaseT:
		return 1, nil
	case BaseG:
		return 2, nil
	case BaseC:
		return 3, nil
	default:
		return 0, fmt.Errorf("%q: %w", b, ErrInvalidBase)
	}
}

// FromDigit maps a digit in [0,4) back to its canonical uppercase base.
// Returns ErrDigitRange outside that interval.
// Complexity: O(1).
func FromDigit(d uint8) (byte, error) {
	if d >= Modulus {
		return 0, fmt.Errorf("%d: %w", d, ErrDigitRange)
	}

	return digitToBase[d], nil
}

// Canonical normalizes a base to its uppercase form, or reports
// ErrInvalidBase if the character is not part of the alphabet.
// Complexity: O(1).
func Canonical(b byte) (byte, error) {
	u := upper(b)
	if !IsValid(u) {
		return 0, fmt.Errorf("%q: %w", b, ErrInvalidBase)
	}

	return u, nil
}

// IsValid reports whether b is one of the four canonical uppercase bases.
// Note: lowercase input is NOT valid here; use Canonical to fold first.
// Complexity: O(1).
func IsValid(b byte) bool {
	return b == BaseA || b == BaseT || b == BaseG || b == BaseC
}

// ParseSequence validates s and returns its canonical uppercase bases.
// Returns ErrEmptySequence for "", or ErrInvalidBase (wrapped with the
// offending zero-based position) on the first character outside the
// alphabet. The input string is never modified.
// Complexity: O(len(s)).
func ParseSequence(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrEmptySequence
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b, err := Canonical(s[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = b
	}

	return out, nil
}
