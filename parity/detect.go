package parity

import "github.com/katalvlaran/nucleo/nucleotide"

// DetectAndCorrect — single-error detection and correction.
//
// Algorithm outline:
//  1. Validate the block: at least 2×2, every cell decodes to a digit.
//     Any violation → StatusInvalidInput (a malformed BLOCK, as opposed to
//     the malformed input SEQUENCES Build rejects).
//  2. Recompute syndromes. The row pass sums each data row and compares it
//     to the stored row parity, accumulating the stored row parities into
//     the final column sum; the column pass does the symmetric work and
//     accumulates the stored column parities into the final row sum. The
//     corner then participates as the last index of BOTH syndromes,
//     checked against each accumulated margin independently.
//  3. Classify:
//     – both syndromes empty → StatusOK;
//     – not exactly one index in each → StatusUnrecoverable;
//     – exactly one row r and one column c → the corrupted cell is
//     uniquely (r,c); repair it by region:
//     a. data cell: the digit must simultaneously restore its row and
//     column parity; if the two constraints disagree the corruption
//     is not a single-cell event → StatusUnrecoverable;
//     b. row-parity cell: rewrite from the recomputed row sum, then
//     refresh the corner (a linear function of every row parity);
//     c. column-parity cell: symmetric to (b);
//     d. corner: rewrite from the accumulated row-parity margin (the
//     column-parity margin must already agree — it is the only
//     mismatch).
//
// Exactly one corrective write ever occurs per invocation (plus the corner
// fixup in branches b/c); every non-corrected outcome leaves the block
// byte-for-byte unmodified. The caller owns recovery policy — nothing is
// retried here.
//
// The block must be exclusively owned for the duration of the call.
// Complexity: O(rows×cols) time, O(rows+cols) extra memory.
func DetectAndCorrect(b *Block) Result {
	// Step 1: structural validation and digit decoding.
	if b == nil || len(b.cells) < 2 || len(b.cells[0]) < 2 {
		return Result{Status: StatusInvalidInput, Row: -1, Col: -1}
	}
	totalRows, totalCols := len(b.cells), len(b.cells[0])
	dataRows, dataCols := totalRows-1, totalCols-1

	digits := make([][]uint8, totalRows)
	for i, row := range b.cells {
		if len(row) != totalCols {
			return Result{Status: StatusInvalidInput, Row: -1, Col: -1}
		}
		digits[i] = make([]uint8, totalCols)
		for j := 0; j < totalCols; j++ {
			d, err := nucleotide.ToDigit(row[j])
			if err != nil {
				return Result{Status: StatusInvalidInput, Row: -1, Col: -1}
			}
			digits[i][j] = d
		}
	}

	// Step 2: side-effect-free recomputation of all sums and syndromes.
	rowSums := make([]int, totalRows)
	colSums := make([]int, totalCols)
	rowExpected := make([]int, totalRows)
	colExpected := make([]int, totalCols)
	rowStored := make([]int, totalRows)
	colStored := make([]int, totalCols)
	var rowMismatches, colMismatches []int

	for i := 0; i < dataRows; i++ {
		for j := 0; j < dataCols; j++ {
			d := int(digits[i][j])
			rowSums[i] += d
			colSums[j] += d
		}
		rowExpected[i] = rowSums[i] % nucleotide.Modulus
		rowStored[i] = int(digits[i][dataCols])
		// Stored row parities feed the corner's column-side check.
		colSums[dataCols] += rowStored[i]
		if rowStored[i] != rowExpected[i] {
			rowMismatches = append(rowMismatches, i)
		}
	}

	for j := 0; j < dataCols; j++ {
		colExpected[j] = colSums[j] % nucleotide.Modulus
		colStored[j] = int(digits[dataRows][j])
		// Stored column parities feed the corner's row-side check.
		rowSums[dataRows] += colStored[j]
		if colStored[j] != colExpected[j] {
			colMismatches = append(colMismatches, j)
		}
	}

	// Corner: the final index of both syndromes, verified against each
	// margin independently.
	corner := int(digits[dataRows][dataCols])
	colExpected[dataCols] = colSums[dataCols] % nucleotide.Modulus
	colStored[dataCols] = corner
	if corner != colExpected[dataCols] {
		colMismatches = append(colMismatches, dataCols)
	}
	rowExpected[dataRows] = rowSums[dataRows] % nucleotide.Modulus
	rowStored[dataRows] = corner
	if corner != rowExpected[dataRows] {
		rowMismatches = append(rowMismatches, dataRows)
	}

	// Step 3: classification.
	if len(rowMismatches) == 0 && len(colMismatches) == 0 {
		return Result{Status: StatusOK, Row: -1, Col: -1}
	}
	if len(rowMismatches) != 1 || len(colMismatches) != 1 {
		return Result{Status: StatusUnrecoverable, Row: -1, Col: -1}
	}

	r, c := rowMismatches[0], colMismatches[0]
	switch {
	case r < dataRows && c < dataCols:
		// (a) Data cell: both constraints must demand the same digit.
		current := int(digits[r][c])
		rowWithout := rowSums[r] - current
		colWithout := colSums[c] - current
		neededRow := ((rowStored[r]-rowWithout%nucleotide.Modulus)%nucleotide.Modulus +
			nucleotide.Modulus) % nucleotide.Modulus
		neededCol := ((colStored[c]-colWithout%nucleotide.Modulus)%nucleotide.Modulus +
			nucleotide.Modulus) % nucleotide.Modulus
		if neededRow != neededCol {
			return Result{Status: StatusUnrecoverable, Row: -1, Col: -1}
		}
		b.cells[r][c] = mustBase(neededRow)

		return Result{Status: StatusCorrected, Row: r, Col: c}

	case r < dataRows && c == dataCols:
		// (b) Row-parity cell, plus the dependent corner refresh.
		b.cells[r][dataCols] = mustBase(rowExpected[r])
		b.cells[dataRows][dataCols] = mustBase(
			(colSums[dataCols] - rowStored[r] + rowExpected[r]) % nucleotide.Modulus)

		return Result{Status: StatusCorrected, Row: r, Col: dataCols}

	case r == dataRows && c < dataCols:
		// (c) Column-parity cell, plus the dependent corner refresh.
		b.cells[dataRows][c] = mustBase(colExpected[c])
		b.cells[dataRows][dataCols] = mustBase(
			(rowSums[dataRows] - colStored[c] + colExpected[c]) % nucleotide.Modulus)

		return Result{Status: StatusCorrected, Row: dataRows, Col: c}

	default:
		// (d) Corner cell: both margins already agree on its value.
		b.cells[dataRows][dataCols] = mustBase(colExpected[dataCols])

		return Result{Status: StatusCorrected, Row: dataRows, Col: dataCols}
	}
}
