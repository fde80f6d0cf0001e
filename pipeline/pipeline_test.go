package pipeline_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/nucleo/parity"
	"github.com/katalvlaran/nucleo/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRows = []string{
	"AACGGATGA",
	"TTAGGCATA",
	"CGTATTCGG",
}

// TestVerify_MixedBatch: clean, corrupted and unrecoverable blocks keep
// their input positions in the result slice, and corrections land in the
// caller's blocks.
func TestVerify_MixedBatch(t *testing.T) {
	clean, err := parity.Build(testRows)
	require.NoError(t, err)

	corrupted, err := parity.Build(testRows)
	require.NoError(t, err)
	require.NoError(t, corrupted.Set(0, 0, 'T'))

	hopeless, err := parity.Build(testRows)
	require.NoError(t, err)
	require.NoError(t, hopeless.Set(0, 0, 'T'))
	require.NoError(t, hopeless.Set(2, 3, 'G'))

	results, err := pipeline.Verify(context.Background(),
		[]*parity.Block{clean, corrupted, hopeless}, pipeline.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, parity.StatusOK, results[0].Status)
	assert.Equal(t, parity.Result{Status: parity.StatusCorrected, Row: 0, Col: 0}, results[1])
	assert.Equal(t, parity.StatusUnrecoverable, results[2].Status)

	assert.True(t, corrupted.Equal(clean), "the correction must land in the caller's block")
}

// TestVerify_SingleWorker degenerates to sequential processing.
func TestVerify_SingleWorker(t *testing.T) {
	blocks := make([]*parity.Block, 8)
	for i := range blocks {
		blk, err := parity.Build(testRows)
		require.NoError(t, err)
		blocks[i] = blk
	}

	results, err := pipeline.Verify(context.Background(), blocks, pipeline.Options{Workers: 1})
	require.NoError(t, err)
	for i, res := range results {
		assert.Equal(t, parity.StatusOK, res.Status, "block %d", i)
	}
}

// TestVerify_BadOptions rejects non-positive pool sizes.
func TestVerify_BadOptions(t *testing.T) {
	_, err := pipeline.Verify(context.Background(), nil, pipeline.Options{Workers: 0})
	assert.ErrorIs(t, err, pipeline.ErrBadWorkerCount)

	_, err = pipeline.VerifySequences(context.Background(), nil, pipeline.Options{Workers: -3})
	assert.ErrorIs(t, err, pipeline.ErrBadWorkerCount)
}

// TestVerify_CanceledContext surfaces the context error.
func TestVerify_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blk, err := parity.Build(testRows)
	require.NoError(t, err)

	_, err = pipeline.Verify(ctx, []*parity.Block{blk}, pipeline.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestVerifySequences_PerItemBuildErrors: a bad set fails its own item
// only; the rest of the batch builds and verifies normally.
func TestVerifySequences_PerItemBuildErrors(t *testing.T) {
	sets := [][]string{
		testRows,
		{"ATG", "AT"}, // length mismatch
		{"GATTACA"},
	}

	items, err := pipeline.VerifySequences(context.Background(), sets, pipeline.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, items, 3)

	require.NoError(t, items[0].Err)
	assert.Equal(t, parity.StatusOK, items[0].Result.Status)
	assert.NotNil(t, items[0].Block)

	assert.ErrorIs(t, items[1].Err, parity.ErrRowLengthMismatch)
	assert.Nil(t, items[1].Block)

	require.NoError(t, items[2].Err)
	assert.Equal(t, parity.StatusOK, items[2].Result.Status)
}
