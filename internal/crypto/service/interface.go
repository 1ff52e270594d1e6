// Package service provides the AEAD ciphers and the Engine that seals note content
// into envelopes.
package service

import (
	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
)

// AEAD is an authenticated cipher bound to one key.
//
// Encrypt generates a fresh random nonce on every call. Implementations must be
// safe for concurrent use.
type AEAD interface {
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager builds AEAD ciphers for a key and algorithm.
type AEADManager interface {
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}
