package seal

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// Key and nonce geometry of XChaCha20.
const (
	KeySize   = chacha20.KeySize   // 32 bytes
	NonceSize = chacha20.NonceSizeX // 24 bytes
)

// Envelope carries one sealed metadata block: the per-record nonce and a
// ciphertext of exactly the plaintext's length.
type Envelope struct {
	Nonce      [NonceSize]byte
	Ciphertext []byte
}

// MarshalBinary renders the on-disk layout: nonce||ciphertext.
func (e *Envelope) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, NonceSize+len(e.Ciphertext))
	out = append(out, e.Nonce[:]...)
	out = append(out, e.Ciphertext...)

	return out, nil
}

// UnmarshalBinary parses the nonce||ciphertext layout. The ciphertext is
// copied, so the envelope does not alias data.
func (e *Envelope) UnmarshalBinary(data []byte) error {
	if len(data) < NonceSize {
		return fmt.Errorf("%d bytes: %w", len(data), ErrEnvelopeTooShort)
	}
	copy(e.Nonce[:], data[:NonceSize])
	e.Ciphertext = append([]byte(nil), data[NonceSize:]...)

	return nil
}

// Seal encrypts plaintext under key with a fresh random nonce.
func Seal(key, plaintext []byte) (*Envelope, error) {
	var nonce [NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("seal: nonce: %w", err)
	}

	return sealWithNonce(key, nonce, plaintext)
}

// Open decrypts an envelope. A stream cipher is its own inverse, so this
// is Seal's keystream applied to the ciphertext under the stored nonce.
func Open(key []byte, env *Envelope) ([]byte, error) {
	return xorStream(key, env.Nonce, env.Ciphertext)
}

// sealWithNonce is the deterministic core of Seal, split out so tests can
// pin exact envelopes.
func sealWithNonce(key []byte, nonce [NonceSize]byte, plaintext []byte) (*Envelope, error) {
	ct, err := xorStream(key, nonce, plaintext)
	if err != nil {
		return nil, err
	}

	return &Envelope{Nonce: nonce, Ciphertext: ct}, nil
}

// xorStream applies the XChaCha20 keystream for (key, nonce) to src.
func xorStream(key []byte, nonce [NonceSize]byte, src []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%d bytes: %w", len(key), ErrKeySize)
	}
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
	if err != nil {
		return nil, fmt.Errorf("seal: cipher init: %w", err)
	}
	dst := make([]byte, len(src))
	c.XORKeyStream(dst, src)

	return dst, nil
}
