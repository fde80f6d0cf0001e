package seal

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// ParseKeyHex decodes hex-encoded key material into a KeySize-byte key.
// Whitespace anywhere between digits is tolerated (keys are often stored
// wrapped); after stripping it, exactly 64 hex digits must remain.
func ParseKeyHex(s string) ([]byte, error) {
	compact := strings.Join(strings.Fields(s), "")
	if len(compact) != hex.EncodedLen(KeySize) {
		return nil, fmt.Errorf("%d hex digits: %w", len(compact), ErrKeySize)
	}
	key, err := hex.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrKeyEncoding)
	}

	return key, nil
}

// LoadKeyFile reads and parses a hex key file.
func LoadKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seal: read key file: %w", err)
	}

	return ParseKeyHex(string(data))
}
