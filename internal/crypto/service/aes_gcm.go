package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
)

// AESGCMCipher is AES-GCM with the standard 12-byte nonce and 16-byte tag.
// The key length picks AES-128 or AES-256; AES-192 is not accepted.
type AESGCMCipher struct {
	randomNonceSealer
}

func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.KeySize128 && len(key) != cryptoDomain.KeySize256 {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{randomNonceSealer{aead: gcm}}, nil
}
