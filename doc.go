// Package nucleo is a toolkit for keeping DNA sequence data honest —
// from a compact 2D parity code that detects and repairs single-base
// mutations, to SNP payload embedding and sealed hotspot metadata.
//
// 🚀 What is nucleo?
//
//	A small, focused library built around modular arithmetic over the
//	four-letter alphabet {A, T, G, C} (A=0, T=1, G=2, C=3 mod 4):
//		• Parity blocks: augment a rectangular grid of bases with one
//		  parity row, one parity column and a doubly-redundant corner
//		• Detection & correction: locate and repair exactly one mutated
//		  base per block, or flag the block as unrecoverable
//		• SNP embedding: hide a payload bitstream inside a sequence by
//		  substituting alleles at candidate SNP positions
//		• Sealing: XChaCha20 stream encryption of hotspot metadata
//		• Batch pipeline: verify many independent blocks in parallel
//
// ✨ Why choose nucleo?
//
//   - Predictable guarantees – single-error correction is exact, and
//     anything the code cannot disambiguate is reported, never guessed
//   - Rock-solid ownership – blocks are deep-copied on build; failure
//     paths leave them byte-for-byte untouched
//   - Pure Go core – no cgo, no globals, no hidden deps
//
// Under the hood, everything is organized into focused subpackages:
//
//	nucleotide/ — base ↔ digit codec and sequence validation
//	parity/     — parity block builder + detector/corrector (the core)
//	snpembed/   — payload bit embedding at candidate SNP positions
//	hotspot/    — hotspot record and sequence TSV parsing
//	seal/       — XChaCha20 envelopes for hotspot metadata
//	pipeline/   — parallel batch verification of independent blocks
//	cmd/nucleo  — demonstration and batch-processing CLI
//
// Quick ASCII example — a 3×3 data grid augmented to 4×4:
//
//	A T G │ C        each data row gains its digit-sum mod 4
//	C C A │ G
//	G A T │ C
//	──────┼──
//	T A C │ A        each column gains its sum; corner = total sum
//
// Flip any single cell and parity.DetectAndCorrect will name it and
// restore it. Dive into the per-package docs for full contracts.
//
//	go get github.com/katalvlaran/nucleo
package nucleo
