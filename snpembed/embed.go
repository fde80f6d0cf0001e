package snpembed

import "fmt"

// CandidateSNP describes one usable substitution site in a sequence.
type CandidateSNP struct {
	// Position is the zero-based index in the sequence.
	Position int
	// Reference is the base expected at Position (case-insensitive).
	Reference byte
	// Alternates optionally lists known alternate alleles; when absent a
	// deterministic fallback map supplies them.
	Alternates []byte
}

// EmbeddedAllele records one bit's substitution for the audit trail.
type EmbeddedAllele struct {
	Position  int
	Reference byte
	Allele    byte
	Bit       uint8
}

// Result aggregates an embedding: the mutated sequence and the per-bit
// substitutions in payload order.
type Result struct {
	Sequence string
	Alleles  []EmbeddedAllele
}

// Base order for the deterministic map: A=0, C=1, G=2, T=3. This is the
// embedding subsystem's own ordering, not the parity digit assignment.
var defaultAlleleMap = [4][2]byte{
	{'C', 'G'}, // A
	{'A', 'T'}, // C
	{'A', 'T'}, // G
	{'C', 'G'}, // T
}

// Capacity reports how many payload bits the candidate list can carry:
// one bit per candidate SNP.
func Capacity(candidates []CandidateSNP) int { return len(candidates) }

// Embed encodes payload into sequence, most-significant bit first within
// each byte, consuming one candidate per bit in order. The input sequence
// is never modified; the mutated copy and the substitution audit trail are
// returned together.
//
// Errors: ErrInsufficientCapacity, ErrPositionOutOfBounds,
// ErrReferenceMismatch, ErrBadReference — each wrapped with the bit index
// it failed on where applicable.
func Embed(sequence string, candidates []CandidateSNP, payload []byte) (*Result, error) {
	bitCount := len(payload) * 8
	if bitCount > len(candidates) {
		return nil, fmt.Errorf("%d bits, %d candidates: %w",
			bitCount, len(candidates), ErrInsufficientCapacity)
	}

	mutated := []byte(sequence)
	var alleles []EmbeddedAllele
	if bitCount > 0 {
		alleles = make([]EmbeddedAllele, 0, bitCount)
	}

	for i := 0; i < bitCount; i++ {
		cand := candidates[i]
		expected := upper(cand.Reference)
		bit := (payload[i/8] >> (7 - uint(i%8))) & 1

		if cand.Position < 0 || cand.Position >= len(mutated) {
			return nil, fmt.Errorf("bit %d, position %d: %w", i, cand.Position, ErrPositionOutOfBounds)
		}
		if upper(mutated[cand.Position]) != expected {
			return nil, fmt.Errorf("bit %d, position %d: %w", i, cand.Position, ErrReferenceMismatch)
		}

		allele, err := selectAllele(expected, bit, cand)
		if err != nil {
			return nil, fmt.Errorf("bit %d: %w", i, err)
		}

		mutated[cand.Position] = allele
		alleles = append(alleles, EmbeddedAllele{
			Position:  cand.Position,
			Reference: expected,
			Allele:    allele,
			Bit:       bit,
		})
	}

	return &Result{Sequence: string(mutated), Alleles: alleles}, nil
}

// selectAllele picks the substitution base encoding bit at a candidate.
func selectAllele(reference byte, bit uint8, cand CandidateSNP) (byte, error) {
	refIdx := baseIndex(reference)
	if refIdx < 0 {
		return 0, fmt.Errorf("%q: %w", reference, ErrBadReference)
	}

	// Normalize the provided alternates: uppercase, in-alphabet, distinct
	// from the reference, deduplicated.
	var normalized []byte
	for _, alt := range cand.Alternates {
		if len(normalized) == 4 {
			break
		}
		a := upper(alt)
		if a == reference || baseIndex(a) < 0 {
			continue
		}
		dup := false
		for _, n := range normalized {
			if n == a {
				dup = true
				break
			}
		}
		if !dup {
			normalized = append(normalized, a)
		}
	}

	switch {
	case len(normalized) >= 2:
		return normalized[bit&1], nil
	case len(normalized) == 1:
		if bit == 0 {
			return normalized[0], nil
		}
		// Need an allele distinct from both the reference and the single
		// provided alternate.
		if defaultAlleleMap[refIdx][0] != normalized[0] {
			return defaultAlleleMap[refIdx][0], nil
		}

		return defaultAlleleMap[refIdx][1], nil
	default:
		return defaultAlleleMap[refIdx][bit&1], nil
	}
}

// baseIndex maps a canonical base to the deterministic-map row, A=0, C=1,
// G=2, T=3; -1 for anything else.
func baseIndex(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return -1
	}
}

// upper folds an ASCII lowercase letter to uppercase.
func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}

	return b
}
