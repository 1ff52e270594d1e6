package service

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// ChaCha20Poly1305Cipher is ChaCha20-Poly1305 with a 12-byte nonce. Keys must be 32 bytes.
type ChaCha20Poly1305Cipher struct {
	randomNonceSealer
}

func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305Cipher, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}
	return &ChaCha20Poly1305Cipher{randomNonceSealer{aead: aead}}, nil
}
