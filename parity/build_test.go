package parity_test

import (
	"testing"

	"github.com/katalvlaran/nucleo/nucleotide"
	"github.com/katalvlaran/nucleo/parity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleRows is the reference 3×9 data grid used throughout the package
// tests; Build augments it to a 4×10 block.
var sampleRows = []string{
	"AACGGATGA",
	"TTAGGCATA",
	"CGTATTCGG",
}

// sampleBlockText is the expected rendering of the augmented sample block:
// row parities G/G/C, column parity row ACAATAATG, corner C.
const sampleBlockText = "AACGGATGAG\n" +
	"TTAGGCATAG\n" +
	"CGTATTCGGC\n" +
	"ACAATAATGC\n"

// TestBuild_Errors verifies eager, atomic input validation.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoSequences", nil, parity.ErrEmptyInput},
		{"EmptyFirstSequence", []string{""}, parity.ErrEmptyInput},
		{"EmptyLaterSequence", []string{"ATG", ""}, parity.ErrEmptyInput},
		{"LengthMismatch", []string{"ATG", "AT"}, parity.ErrRowLengthMismatch},
		{"InvalidBase", []string{"AACGGATGN"}, nucleotide.ErrInvalidBase},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blk, err := parity.Build(tc.rows)
			assert.Nil(t, blk, "no partially-built block may escape")
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestBuild_SampleBlock checks dimensions and every parity cell of the
// reference block against hand-computed values.
func TestBuild_SampleBlock(t *testing.T) {
	blk, err := parity.Build(sampleRows)
	require.NoError(t, err)

	assert.Equal(t, 4, blk.TotalRows())
	assert.Equal(t, 10, blk.TotalCols())
	assert.Equal(t, 3, blk.DataRows())
	assert.Equal(t, 9, blk.DataCols())
	assert.Equal(t, sampleBlockText, blk.String())
}

// TestBuild_Canonicalizes verifies lowercase input is stored uppercase.
func TestBuild_Canonicalizes(t *testing.T) {
	blk, err := parity.Build([]string{"atgc"})
	require.NoError(t, err)
	// Digits 0+1+2+3=6 → row parity G; single-row columns mirror the data;
	// corner 6 mod 4 = 2 → G.
	assert.Equal(t, "ATGCG\nATGCG\n", blk.String())
}

// TestBuild_CornerDoubleRedundancy confirms the corner equals both the
// row-parity margin sum and the column-parity margin sum mod 4 — the
// structural invariant, not a coincidence of computation order.
func TestBuild_CornerDoubleRedundancy(t *testing.T) {
	blk, err := parity.Build(sampleRows)
	require.NoError(t, err)

	digitAt := func(r, c int) int {
		base, err := blk.At(r, c)
		require.NoError(t, err)
		d, err := nucleotide.ToDigit(base)
		require.NoError(t, err)

		return int(d)
	}

	corner := digitAt(blk.DataRows(), blk.DataCols())
	rowMargin, colMargin := 0, 0
	for i := 0; i < blk.DataRows(); i++ {
		rowMargin += digitAt(i, blk.DataCols())
	}
	for j := 0; j < blk.DataCols(); j++ {
		colMargin += digitAt(blk.DataRows(), j)
	}
	assert.Equal(t, corner, rowMargin%nucleotide.Modulus, "corner vs row-parity margin")
	assert.Equal(t, corner, colMargin%nucleotide.Modulus, "corner vs column-parity margin")
}

// TestBlock_AtSetBounds exercises the accessor error paths.
func TestBlock_AtSetBounds(t *testing.T) {
	blk, err := parity.Build(sampleRows)
	require.NoError(t, err)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 10}} {
		_, err = blk.At(rc[0], rc[1])
		assert.ErrorIs(t, err, parity.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
		err = blk.Set(rc[0], rc[1], 'A')
		assert.ErrorIs(t, err, parity.ErrOutOfRange, "Set(%d,%d)", rc[0], rc[1])
	}
}

// TestBlock_SetFoldsCase verifies Set stores canonical uppercase bases.
func TestBlock_SetFoldsCase(t *testing.T) {
	blk, err := parity.Build(sampleRows)
	require.NoError(t, err)

	require.NoError(t, blk.Set(0, 0, 't'))
	base, err := blk.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, byte('T'), base)
}

// TestBlock_CloneEqual verifies deep copies diverge independently.
func TestBlock_CloneEqual(t *testing.T) {
	blk, err := parity.Build(sampleRows)
	require.NoError(t, err)

	cp := blk.Clone()
	assert.True(t, blk.Equal(cp))

	require.NoError(t, cp.Set(0, 0, 'T'))
	assert.False(t, blk.Equal(cp), "mutating the clone must not alias the original")
	base, err := blk.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, byte('A'), base)
}
