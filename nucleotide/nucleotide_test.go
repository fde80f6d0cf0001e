package nucleotide_test

import (
	"testing"

	"github.com/katalvlaran/nucleo/nucleotide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToDigit_Mapping verifies the canonical base→digit assignment,
// including case-insensitivity.
func TestToDigit_Mapping(t *testing.T) {
	cases := []struct {
		base byte
		want uint8
	}{
		{'A', 0}, {'T', 1}, {'G', 2}, {'C', 3},
		{'a', 0}, {'t', 1}, {'g', 2}, {'c', 3},
	}
	for _, tc := range cases {
		d, err := nucleotide.ToDigit(tc.base)
		require.NoError(t, err, "ToDigit(%q)", tc.base)
		assert.Equal(t, tc.want, d, "ToDigit(%q)", tc.base)
	}
}

// TestToDigit_Invalid ensures every non-alphabet character errors ErrInvalidBase.
func TestToDigit_Invalid(t *testing.T) {
	for _, b := range []byte{'N', 'U', 'x', ' ', '0', 0} {
		_, err := nucleotide.ToDigit(b)
		assert.ErrorIs(t, err, nucleotide.ErrInvalidBase, "ToDigit(%q)", b)
	}
}

// TestFromDigit_RoundTrip checks that FromDigit inverts ToDigit over [0,4)
// and rejects digits outside that interval.
func TestFromDigit_RoundTrip(t *testing.T) {
	for d := uint8(0); d < nucleotide.Modulus; d++ {
		b, err := nucleotide.FromDigit(d)
		require.NoError(t, err)
		back, err := nucleotide.ToDigit(b)
		require.NoError(t, err)
		assert.Equal(t, d, back, "round trip for digit %d", d)
	}

	_, err := nucleotide.FromDigit(4)
	assert.ErrorIs(t, err, nucleotide.ErrDigitRange)
	_, err = nucleotide.FromDigit(255)
	assert.ErrorIs(t, err, nucleotide.ErrDigitRange)
}

// TestCanonical folds lowercase to uppercase and rejects foreign characters.
func TestCanonical(t *testing.T) {
	b, err := nucleotide.Canonical('g')
	require.NoError(t, err)
	assert.Equal(t, byte('G'), b)

	_, err = nucleotide.Canonical('n')
	assert.ErrorIs(t, err, nucleotide.ErrInvalidBase)
}

// TestParseSequence covers canonicalization, empty input, and the wrapped
// position context on invalid characters.
func TestParseSequence(t *testing.T) {
	got, err := nucleotide.ParseSequence("atGC")
	require.NoError(t, err)
	assert.Equal(t, []byte("ATGC"), got)

	_, err = nucleotide.ParseSequence("")
	assert.ErrorIs(t, err, nucleotide.ErrEmptySequence)

	_, err = nucleotide.ParseSequence("ATNGC")
	assert.ErrorIs(t, err, nucleotide.ErrInvalidBase)
	assert.Contains(t, err.Error(), "position 2")
}
