// Package parity implements a two-dimensional parity code over the DNA
// alphabet: it augments a rectangular grid of bases with a parity row, a
// parity column and a doubly-redundant corner, then detects and — for
// exactly one mutated cell — corrects corruption in place.
//
// What:
//
//   - Build wraps equal-length sequences into an augmented Block:
//     cell (i, dataCols) holds data row i's digit sum mod 4,
//     cell (dataRows, j) holds data column j's digit sum mod 4, and the
//     corner (dataRows, dataCols) holds the total data digit sum mod 4 —
//     consistently derivable from either margin.
//   - DetectAndCorrect recomputes every parity, collects the row and
//     column syndromes (the indices whose stored parity disagrees, with
//     the corner acting as the final index of both dimensions), and:
//     – empty syndromes → StatusOK;
//     – one row index and one column index → the unique suspect cell is
//     repaired, branching on data cell / row-parity cell / column-parity
//     cell / corner;
//     – anything else → StatusUnrecoverable, block untouched.
//
// Why:
//
//   - Sequencing and transmission introduce single-base substitutions;
//     a 2D parity block pays one extra row and column to pinpoint and
//     undo exactly one of them, and to honestly refuse everything else.
//
// Complexity:
//
//   - Build:             O(rows×cols) time and memory.
//   - DetectAndCorrect:  O(rows×cols) time, O(rows+cols) extra memory.
//
// Errors and statuses:
//
//   - ErrEmptyInput: no sequences, or a zero-length sequence.
//   - ErrRowLengthMismatch: sequences of differing lengths.
//   - nucleotide.ErrInvalidBase (wrapped): a character outside {A,T,G,C}.
//   - ErrOutOfRange: At/Set index outside the block.
//   - StatusInvalidInput: a malformed block handed to DetectAndCorrect
//     (too small, or a cell that no longer decodes) — distinct from the
//     build-time InvalidBase, which is about raw input sequences.
//   - StatusUnrecoverable: the syndrome cannot be explained by exactly
//     one mutated cell. Known blind spot, preserved deliberately: some
//     colluding multi-error patterns reproduce a single-error syndrome
//     (e.g. two same-row changes cancelling in the row sum); the code
//     reports whatever the syndrome analysis yields and never guesses.
//
// Ownership:
//
//   - Build deep-copies its inputs; a Block is the sole mutable artifact.
//   - DetectAndCorrect needs exclusive access for the call. It performs
//     at most one correction (plus the dependent corner fixup when a
//     marginal parity cell is repaired); on StatusUnrecoverable and
//     StatusInvalidInput the block is byte-for-byte unchanged.
//   - Distinct Blocks share no state: batches parallelize freely
//     (see nucleo/pipeline).
package parity
