package service

import (
	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
)

// AEADManagerService creates AEAD ciphers after checking the key fits the algorithm.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher returns an AEAD for alg. AES-GCM accepts 16 or 32 byte keys,
// ChaCha20-Poly1305 accepts 32 byte keys only.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	switch alg {
	case cryptoDomain.AESGCM:
		if len(key) != cryptoDomain.KeySize128 && len(key) != cryptoDomain.KeySize256 {
			return nil, cryptoDomain.ErrInvalidKeySize
		}
		return NewAESGCM(key)
	case cryptoDomain.ChaCha20:
		if len(key) != cryptoDomain.KeySize256 {
			return nil, cryptoDomain.ErrInvalidKeySize
		}
		return NewChaCha20Poly1305(key)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}
