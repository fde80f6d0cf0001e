// Package pipeline fans a batch of parity blocks out to a bounded worker
// pool. Distinct blocks share no state, so verification parallelizes with
// zero coordination: each worker owns one block exclusively for the
// duration of its DetectAndCorrect call.
//
// What:
//
//   - Verify: run DetectAndCorrect over many already-built blocks, results
//     indexed to inputs.
//   - VerifySequences: build a block per sequence set, then verify; build
//     failures are reported per item instead of failing the batch.
//
// Why:
//
//   - Hotspot exports carry thousands of independent windows; a small
//     fixed pool keeps throughput high without unbounded goroutine fanout.
//
// Options:
//
//   - Options.Workers: pool size; DefaultOptions uses 7.
//
// Errors:
//
//   - ErrBadWorkerCount: a pool size below 1.
//   - Context cancellation aborts undispatched work and surfaces the
//     context's error; per-block outcomes are never errors, they are
//     parity.Result values.
package pipeline
