package snpembed_test

import (
	"testing"

	"github.com/katalvlaran/nucleo/snpembed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// candidatesAt builds bare candidates (no alternates) over reference bases
// taken from the sequence itself.
func candidatesAt(sequence string, positions ...int) []snpembed.CandidateSNP {
	out := make([]snpembed.CandidateSNP, len(positions))
	for i, p := range positions {
		out[i] = snpembed.CandidateSNP{Position: p, Reference: sequence[p]}
	}

	return out
}

// TestCapacity is one bit per candidate.
func TestCapacity(t *testing.T) {
	assert.Equal(t, 0, snpembed.Capacity(nil))
	assert.Equal(t, 3, snpembed.Capacity(make([]snpembed.CandidateSNP, 3)))
}

// TestEmbed_DefaultMap encodes 0xA5 (bits 1,0,1,0,0,1,0,1 MSB-first) over
// eight A-reference candidates with no alternates: bit 0 → C, bit 1 → G.
func TestEmbed_DefaultMap(t *testing.T) {
	seq := "AAAAAAAA"
	res, err := snpembed.Embed(seq, candidatesAt(seq, 0, 1, 2, 3, 4, 5, 6, 7), []byte{0xA5})
	require.NoError(t, err)

	assert.Equal(t, "GCGCCGCG", res.Sequence)
	require.Len(t, res.Alleles, 8)
	wantBits := []uint8{1, 0, 1, 0, 0, 1, 0, 1}
	for i, a := range res.Alleles {
		assert.Equal(t, wantBits[i], a.Bit, "bit %d", i)
		assert.Equal(t, i, a.Position, "bit %d", i)
		assert.Equal(t, byte('A'), a.Reference, "bit %d", i)
	}
}

// TestEmbed_NormalizedAlternates: provided alternates are uppercased,
// deduplicated, and stripped of the reference and foreign characters
// before the bit indexes them.
func TestEmbed_NormalizedAlternates(t *testing.T) {
	cands := make([]snpembed.CandidateSNP, 8)
	for i := range cands {
		cands[i] = snpembed.CandidateSNP{
			Position:   i,
			Reference:  'A',
			Alternates: []byte{'t', 'g', 'T', 'A', 'x'},
		}
	}

	res, err := snpembed.Embed("AAAAAAAA", cands, []byte{0x80})
	require.NoError(t, err)
	// Normalized list is [T G]; the leading 1-bit indexes entry 1 (G) and
	// every following 0-bit indexes entry 0 (T).
	assert.Equal(t, "GTTTTTTT", res.Sequence)
}

// TestEmbed_SingleAlternateFallback: with exactly one usable alternate,
// bit 0 selects it and bit 1 takes the first default-map allele differing
// from it (reference A: map {C,G}, alternate C forces G).
func TestEmbed_SingleAlternateFallback(t *testing.T) {
	eight := make([]snpembed.CandidateSNP, 8)
	for i := range eight {
		eight[i] = snpembed.CandidateSNP{Position: i, Reference: 'A', Alternates: []byte{'C'}}
	}
	// 0x40 = bits 0,1,0,0,0,0,0,0 MSB-first.
	res, err := snpembed.Embed("AAAAAAAA", eight, []byte{0x40})
	require.NoError(t, err)
	assert.Equal(t, byte('C'), res.Sequence[0], "bit 0 picks the provided alternate")
	assert.Equal(t, byte('G'), res.Sequence[1], "bit 1 falls back past the colliding map entry")
}

// TestEmbed_Errors covers the failure taxonomy.
func TestEmbed_Errors(t *testing.T) {
	seq := "ATGC"

	_, err := snpembed.Embed(seq, candidatesAt(seq, 0, 1, 2), []byte{0xFF})
	assert.ErrorIs(t, err, snpembed.ErrInsufficientCapacity)

	bad := repeat(snpembed.CandidateSNP{Position: 99, Reference: 'A'}, 8)
	_, err = snpembed.Embed(seq, bad, []byte{0x00})
	assert.ErrorIs(t, err, snpembed.ErrPositionOutOfBounds)

	mismatch := repeat(snpembed.CandidateSNP{Position: 0, Reference: 'G'}, 8)
	_, err = snpembed.Embed(seq, mismatch, []byte{0x00})
	assert.ErrorIs(t, err, snpembed.ErrReferenceMismatch)

	badRef := repeat(snpembed.CandidateSNP{Position: 0, Reference: 'N'}, 8)
	_, err = snpembed.Embed("NNNNNNNN", badRef, []byte{0x00})
	assert.ErrorIs(t, err, snpembed.ErrBadReference)
}

// TestEmbed_EmptyPayload leaves the sequence untouched.
func TestEmbed_EmptyPayload(t *testing.T) {
	res, err := snpembed.Embed("ATGC", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ATGC", res.Sequence)
	assert.Empty(t, res.Alleles)
}

func repeat(c snpembed.CandidateSNP, n int) []snpembed.CandidateSNP {
	out := make([]snpembed.CandidateSNP, n)
	for i := range out {
		out[i] = c
	}

	return out
}
