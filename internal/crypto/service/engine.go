package service

import (
	"fmt"

	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
)

// Engine seals note content into envelopes and opens them again.
//
// The cipher is built once from the process key and is read-only afterwards, so an
// Engine is safe for concurrent use. Every Encrypt draws a new nonce from crypto/rand.
type Engine struct {
	aead AEAD
	alg  cryptoDomain.Algorithm
}

// NewEngine builds an Engine for key and alg. The key bytes are not retained beyond
// the cipher's own key schedule, so the caller may Close the key afterwards.
func NewEngine(key *cryptoDomain.Key, alg cryptoDomain.Algorithm, manager AEADManager) (*Engine, error) {
	if key == nil || key.Size() == 0 {
		return nil, cryptoDomain.ErrEncryptionSecretNotSet
	}

	aead, err := manager.CreateCipher(key.Bytes(), alg)
	if err != nil {
		return nil, err
	}

	return &Engine{aead: aead, alg: alg}, nil
}

// Algorithm returns the algorithm the engine was built with.
func (e *Engine) Algorithm() cryptoDomain.Algorithm {
	return e.alg
}

// Encrypt seals plaintext and returns base64(nonce || ciphertext || tag).
func (e *Engine) Encrypt(plaintext []byte) (cryptoDomain.Envelope, error) {
	ciphertext, nonce, err := e.aead.Encrypt(plaintext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt content: %w", err)
	}
	return cryptoDomain.NewEnvelope(nonce, ciphertext), nil
}

// Decrypt opens an envelope produced by Encrypt.
//
// It returns ErrMalformedEnvelope when the envelope cannot be decoded and
// ErrDecryptionFailed when tag verification fails. Both wrap errors.ErrIntegrity.
// No plaintext is returned on failure.
func (e *Engine) Decrypt(envelope cryptoDomain.Envelope) ([]byte, error) {
	nonce, ciphertext, err := envelope.Open()
	if err != nil {
		return nil, err
	}

	plaintext, err := e.aead.Decrypt(ciphertext, nonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
