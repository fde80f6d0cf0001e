// Package seal: sentinel error set, matched via errors.Is.
package seal

import "errors"

var (
	// ErrKeySize indicates key material that does not yield exactly
	// KeySize bytes.
	ErrKeySize = errors.New("seal: key must be exactly 32 bytes (64 hex digits)")

	// ErrKeyEncoding indicates non-hexadecimal key material.
	ErrKeyEncoding = errors.New("seal: invalid hex character in key material")

	// ErrEnvelopeTooShort indicates a serialized envelope too short to
	// contain its nonce.
	ErrEnvelopeTooShort = errors.New("seal: envelope shorter than nonce")
)
