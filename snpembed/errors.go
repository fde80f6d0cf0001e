// Package snpembed: sentinel error set, matched via errors.Is.
package snpembed

import "errors"

var (
	// ErrInsufficientCapacity indicates the payload needs more bits than
	// there are candidate SNPs.
	ErrInsufficientCapacity = errors.New("snpembed: insufficient candidate SNPs for payload capacity")

	// ErrPositionOutOfBounds indicates a candidate SNP position outside the
	// sequence.
	ErrPositionOutOfBounds = errors.New("snpembed: candidate SNP position outside sequence bounds")

	// ErrReferenceMismatch indicates the sequence base at a candidate
	// position differs from the candidate's expected reference.
	ErrReferenceMismatch = errors.New("snpembed: reference base does not match sequence at candidate position")

	// ErrBadReference indicates a reference nucleotide outside {A,C,G,T}.
	ErrBadReference = errors.New("snpembed: unsupported reference nucleotide")
)
