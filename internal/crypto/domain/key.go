package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
)

const redacted = "[REDACTED]"

// Key holds the note encryption key material.
//
// A Key is built once at startup and shared read-only afterwards. It never renders
// its bytes through fmt or slog.
type Key struct {
	material []byte
}

// ParseKey decodes a hex encoded secret into a Key.
//
// The secret is parsed strictly: surrounding whitespace counts as a non-hex character.
// The decoded key must be exactly 16 or 32 bytes.
func ParseKey(secretHex string) (*Key, error) {
	if secretHex == "" {
		return nil, ErrEncryptionSecretNotSet
	}
	if len(secretHex)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length", ErrInvalidEncryptionSecret)
	}

	material, err := hex.DecodeString(secretHex)
	if err != nil {
		return nil, ErrInvalidEncryptionSecret
	}

	if !validKeySize(len(material)) {
		n := len(material)
		Zero(material)
		return nil, fmt.Errorf("%w: must be 16 or 32 bytes, got %d", ErrInvalidKeySize, n)
	}

	return &Key{material: material}, nil
}

// GenerateKey returns a new random Key of the given size.
func GenerateKey(size int) (*Key, error) {
	if !validKeySize(size) {
		return nil, fmt.Errorf("%w: must be 16 or 32 bytes, got %d", ErrInvalidKeySize, size)
	}

	material := make([]byte, size)
	if _, err := rand.Read(material); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}

	return &Key{material: material}, nil
}

// Bytes returns the raw key material. Callers must not modify or retain it.
func (k *Key) Bytes() []byte {
	return k.material
}

// Size returns the key length in bytes.
func (k *Key) Size() int {
	return len(k.material)
}

// Hex returns the hex encoding of the key. Only key generation output should use it.
func (k *Key) Hex() string {
	return hex.EncodeToString(k.material)
}

// Close zeroes the key material.
func (k *Key) Close() {
	Zero(k.material)
	k.material = nil
}

// String implements fmt.Stringer.
func (k *Key) String() string {
	return redacted
}

// GoString implements fmt.GoStringer.
func (k *Key) GoString() string {
	return redacted
}

// LogValue implements slog.LogValuer.
func (k *Key) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

func validKeySize(n int) bool {
	return n == KeySize128 || n == KeySize256
}
