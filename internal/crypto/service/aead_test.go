package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
)

func randomKey(t *testing.T, size int) []byte {
	t.Helper()
	key := make([]byte, size)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestNewAESGCM(t *testing.T) {
	t.Run("AES-128 key", func(t *testing.T) {
		c, err := NewAESGCM(randomKey(t, 16))
		assert.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("AES-256 key", func(t *testing.T) {
		c, err := NewAESGCM(randomKey(t, 32))
		assert.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("AES-192 key is rejected", func(t *testing.T) {
		c, err := NewAESGCM(randomKey(t, 24))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
		assert.Nil(t, c)
	})
}

func TestNewChaCha20Poly1305(t *testing.T) {
	t.Run("valid 256-bit key", func(t *testing.T) {
		c, err := NewChaCha20Poly1305(randomKey(t, 32))
		assert.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("invalid key size", func(t *testing.T) {
		c, err := NewChaCha20Poly1305(randomKey(t, 16))
		assert.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestAEAD_EncryptDecrypt(t *testing.T) {
	aesCipher, err := NewAESGCM(randomKey(t, 16))
	require.NoError(t, err)
	chachaCipher, err := NewChaCha20Poly1305(randomKey(t, 32))
	require.NoError(t, err)

	ciphers := map[string]AEAD{
		"aes-gcm":           aesCipher,
		"chacha20-poly1305": chachaCipher,
	}

	for name, c := range ciphers {
		t.Run(name, func(t *testing.T) {
			plaintext := []byte("Hello, World!")
			aad := []byte("note")

			ciphertext, nonce, err := c.Encrypt(plaintext, aad)
			require.NoError(t, err)
			assert.Len(t, nonce, cryptoDomain.NonceSize)
			assert.Len(t, ciphertext, len(plaintext)+cryptoDomain.TagSize)

			decrypted, err := c.Decrypt(ciphertext, nonce, aad)
			require.NoError(t, err)
			assert.Equal(t, plaintext, decrypted)

			_, err = c.Decrypt(ciphertext, nonce, []byte("other"))
			assert.Error(t, err)

			_, err = c.Decrypt(ciphertext, nonce[:8], aad)
			assert.Error(t, err)
		})
	}
}

func TestAEADManagerService_CreateCipher(t *testing.T) {
	manager := NewAEADManager()

	tests := []struct {
		name     string
		keySize  int
		alg      cryptoDomain.Algorithm
		wantErr  error
		wantType any
	}{
		{name: "AES-GCM with 16 byte key", keySize: 16, alg: cryptoDomain.AESGCM, wantType: &AESGCMCipher{}},
		{name: "AES-GCM with 32 byte key", keySize: 32, alg: cryptoDomain.AESGCM, wantType: &AESGCMCipher{}},
		{
			name:     "ChaCha20 with 32 byte key",
			keySize:  32,
			alg:      cryptoDomain.ChaCha20,
			wantType: &ChaCha20Poly1305Cipher{},
		},
		{name: "ChaCha20 with 16 byte key", keySize: 16, alg: cryptoDomain.ChaCha20, wantErr: cryptoDomain.ErrInvalidKeySize},
		{name: "AES-GCM with 64 byte key", keySize: 64, alg: cryptoDomain.AESGCM, wantErr: cryptoDomain.ErrInvalidKeySize},
		{
			name:    "unsupported algorithm",
			keySize: 32,
			alg:     cryptoDomain.Algorithm("unsupported"),
			wantErr: cryptoDomain.ErrUnsupportedAlgorithm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := manager.CreateCipher(randomKey(t, tt.keySize), tt.alg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, c)
		})
	}
}
