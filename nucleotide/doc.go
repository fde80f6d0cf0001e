// Package nucleotide is the alphabet leaf of nucleo: a total, invertible
// mapping between the four DNA bases and the residues 0..3 modulo 4.
//
// What:
//
//   - ToDigit / FromDigit: bijective base ↔ digit codec (A=0, T=1, G=2, C=3).
//   - Canonical: case-insensitive normalization to the uppercase alphabet.
//   - ParseSequence: validate and canonicalize a whole sequence in one pass.
//
// Why:
//
//   - All parity arithmetic in nucleo/parity is modular arithmetic on
//     digits; this package is the single source of truth for the mapping.
//   - Keeping the codec a leaf (no imports beyond stdlib errors) lets every
//     other package share it without cycles.
//
// Complexity:
//
//   - ToDigit / FromDigit / Canonical: O(1).
//   - ParseSequence: O(len(s)), one allocation for the output slice.
//
// Errors:
//
//   - ErrInvalidBase: a character outside {A,T,G,C} (case-insensitive).
//   - ErrDigitRange: a digit outside [0,4) passed to FromDigit.
//   - ErrEmptySequence: ParseSequence received an empty string.
package nucleotide
