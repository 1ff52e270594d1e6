package service

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

// randomNonceSealer adapts a cipher.AEAD to the AEAD interface. Every Encrypt draws
// its nonce from crypto/rand; no counter or buffer is shared between calls.
type randomNonceSealer struct {
	aead cipher.AEAD
}

func (s randomNonceSealer) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return s.aead.Seal(nil, nonce, plaintext, aad), nonce, nil
}

// Decrypt returns no plaintext at all when the tag does not verify.
func (s randomNonceSealer) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	if len(nonce) != s.aead.NonceSize() {
		return nil, fmt.Errorf("nonce must be %d bytes, got %d", s.aead.NonceSize(), len(nonce))
	}

	plaintext, err := s.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
