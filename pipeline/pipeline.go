package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nucleo/parity"
)

// ErrBadWorkerCount indicates a pool size below 1.
var ErrBadWorkerCount = errors.New("pipeline: worker count must be at least 1")

// Options tunes the verification pool.
type Options struct {
	// Workers bounds the number of blocks verified concurrently.
	Workers int
}

// DefaultOptions returns the default pool size of 7 workers.
func DefaultOptions() Options {
	return Options{Workers: 7}
}

// Verify runs parity.DetectAndCorrect over every block concurrently, at
// most opts.Workers at a time. results[i] corresponds to blocks[i]; blocks
// may be corrected in place exactly as in the sequential API. Every block
// must be exclusively owned by this call — nothing else may read or write
// it until Verify returns.
//
// Cancellation stops dispatching new blocks and returns the context's
// error; already-dispatched blocks finish (a single verification is short
// and unconditionally terminates).
func Verify(ctx context.Context, blocks []*parity.Block, opts Options) ([]parity.Result, error) {
	if opts.Workers < 1 {
		return nil, fmt.Errorf("%d: %w", opts.Workers, ErrBadWorkerCount)
	}

	results := make([]parity.Result, len(blocks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, blk := range blocks {
		i, blk := i, blk // per-iteration copies; go directive is 1.21 for the local toolchain
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = parity.DetectAndCorrect(blk)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	return results, nil
}

// Item is one VerifySequences outcome: either a built (and possibly
// corrected) block with its verification result, or the build error.
type Item struct {
	Block  *parity.Block
	Result parity.Result
	Err    error
}

// VerifySequences builds one parity block per sequence set and verifies
// them all through the pool. Build failures do not fail the batch — they
// surface as per-item errors, matching the caller-owns-recovery policy of
// the core. Only context cancellation fails the whole call.
func VerifySequences(ctx context.Context, sets [][]string, opts Options) ([]Item, error) {
	if opts.Workers < 1 {
		return nil, fmt.Errorf("%d: %w", opts.Workers, ErrBadWorkerCount)
	}

	items := make([]Item, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, set := range sets {
		i, set := i, set // per-iteration copies; go directive is 1.21 for the local toolchain
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			blk, err := parity.Build(set)
			if err != nil {
				items[i] = Item{Err: err}

				return nil
			}
			items[i] = Item{Block: blk, Result: parity.DetectAndCorrect(blk)}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	return items, nil
}
