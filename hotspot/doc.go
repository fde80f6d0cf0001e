// Package hotspot parses SNP hotspot metadata: the plaintext record format
// that nucleo/seal encrypts, and the tab-separated sequence exports the
// preprocessing pipeline produces.
//
// What:
//
//   - ParseRecords reads the block-structured text format:
//     "Hotspot Positions: p1,p2,…" / "Reference: …" / optional
//     "Alternate: …", blank lines between records ignored.
//   - Record.Plaintext renders the canonical metadata block (positions and
//     reference only) — exactly the bytes the sealing subsystem encrypts.
//   - LoadSequenceTSV reads a TSV of per-hotspot DNA strings with
//     case-insensitive header aliases (record_id|id|hotspot_id,
//     hotspot_positions|positions, reference|reference_sequence,
//     hotspot_string|hotspot_sequence|sequence|dna_string), skipping '#'
//     comment rows and generating record_N identifiers when no ID column
//     is present.
//
// Why:
//
//   - These two formats are the interchange boundary between the Python
//     hotspot-extraction pipeline, the sealing step, and the parity code;
//     everything downstream consumes the structures parsed here.
//
// Errors:
//
//   - ErrUnexpectedLine, ErrBadPositions, ErrMissingReference for the
//     record format; ErrNoSequenceColumn, ErrMissingSequence, ErrEmptyTSV
//     for the TSV loader. All wrapped with line/row context.
package hotspot
