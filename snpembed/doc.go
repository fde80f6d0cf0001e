// Package snpembed hides a payload bitstream inside a DNA sequence by
// substituting alleles at candidate SNP positions.
//
// What:
//
//   - Capacity reports how many bits a candidate list can carry (one per SNP).
//   - Embed walks the payload most-significant-bit first, one candidate per
//     bit, replacing the reference base at each position with an allele
//     that encodes the bit, and returns the mutated sequence plus a full
//     per-bit audit trail.
//
// Allele selection, per candidate:
//
//   - Two or more usable alternates (uppercased, deduplicated, reference
//     and foreign characters dropped): the bit indexes the normalized list.
//   - Exactly one alternate: bit 0 selects it; bit 1 falls back to the
//     first deterministic-map allele that differs from it.
//   - No alternates: the deterministic map A→{C,G}, C→{A,T}, G→{A,T},
//     T→{C,G} is indexed by the bit directly.
//
// Note the map is indexed in A,C,G,T order — the embedding subsystem's own
// base order, intentionally distinct from the parity code's A,T,G,C digit
// assignment; the two never mix.
//
// Why:
//
//   - Downstream pipelines transport encrypted hotspot payloads inside the
//     sequences themselves; parity blocks built over the mutated sequences
//     then protect payload and carrier alike.
//
// Complexity:
//
//   - Embed: O(len(payload)·8 + len(sequence)) time, one sequence copy.
//
// Errors:
//
//   - ErrInsufficientCapacity: more payload bits than candidates.
//   - ErrPositionOutOfBounds: a candidate position outside the sequence.
//   - ErrReferenceMismatch: the sequence disagrees with a candidate's
//     expected reference base.
//   - ErrBadReference: a reference base outside the alphabet.
package snpembed
