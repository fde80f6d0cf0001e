// Package seal encrypts hotspot metadata with the XChaCha20 stream cipher:
// a 32-byte key, a random 24-byte nonce per record, and a ciphertext the
// same length as the plaintext, carried together as an Envelope.
//
// What:
//
//   - Seal / Open: encrypt and decrypt one metadata block; Open is the
//     exact inverse (stream cipher, no padding, no length change).
//   - Envelope: nonce + ciphertext, with MarshalBinary/UnmarshalBinary
//     producing the on-disk nonce||ciphertext layout.
//   - ParseKeyHex / LoadKeyFile: read a hex-encoded key, tolerating
//     whitespace between digits.
//
// Why:
//
//   - Hotspot position lists and reference sequences are sensitive; they
//     travel encrypted while the sequences themselves are protected by
//     the parity code. Stream sealing keeps record sizes stable and the
//     per-record format trivially seekable.
//
// Caution: this is unauthenticated stream encryption, matching the
// upstream record format; tampering is caught downstream by the parity
// layer over the carried sequences, not here.
//
// Errors:
//
//   - ErrKeySize: key material not exactly 32 bytes (64 hex digits).
//   - ErrKeyEncoding: non-hexadecimal characters in key material.
//   - ErrEnvelopeTooShort: serialized envelope shorter than a nonce.
package seal
