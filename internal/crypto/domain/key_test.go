package domain

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/securenotes/internal/errors"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		size    int
		wantErr error
	}{
		{name: "16 byte key", secret: strings.Repeat("ab", 16), size: 16},
		{name: "32 byte key", secret: strings.Repeat("0F", 32), size: 32},
		{name: "empty secret", secret: "", wantErr: ErrEncryptionSecretNotSet},
		{name: "15 byte key", secret: strings.Repeat("ab", 15), wantErr: ErrInvalidKeySize},
		{name: "17 byte key", secret: strings.Repeat("ab", 17), wantErr: ErrInvalidKeySize},
		{name: "24 byte key", secret: strings.Repeat("ab", 24), wantErr: ErrInvalidKeySize},
		{name: "odd length", secret: strings.Repeat("a", 33), wantErr: ErrInvalidEncryptionSecret},
		{name: "non-hex characters", secret: strings.Repeat("zz", 16), wantErr: ErrInvalidEncryptionSecret},
		{name: "surrounding whitespace", secret: " " + strings.Repeat("ab", 16) + " ", wantErr: ErrInvalidEncryptionSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(tt.secret)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, apperrors.ErrConfiguration)
				assert.Nil(t, key)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.size, key.Size())
			assert.Equal(t, strings.ToLower(tt.secret), key.Hex())
		})
	}
}

func TestGenerateKey(t *testing.T) {
	t.Run("valid sizes", func(t *testing.T) {
		for _, size := range []int{KeySize128, KeySize256} {
			key, err := GenerateKey(size)
			require.NoError(t, err)
			assert.Equal(t, size, key.Size())

			parsed, err := ParseKey(key.Hex())
			require.NoError(t, err)
			assert.Equal(t, key.Bytes(), parsed.Bytes())
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		key, err := GenerateKey(24)
		assert.ErrorIs(t, err, ErrInvalidKeySize)
		assert.Nil(t, key)
	})
}

func TestKey_Redaction(t *testing.T) {
	secret := strings.Repeat("ab", 16)
	key, err := ParseKey(secret)
	require.NoError(t, err)

	assert.Equal(t, "[REDACTED]", key.String())
	assert.NotContains(t, fmt.Sprintf("%v %+v %#v %s", key, key, key, key), secret)

	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("loaded key", slog.Any("key", key))
	assert.NotContains(t, buf.String(), secret)
	assert.Contains(t, buf.String(), "[REDACTED]")
}

func TestKey_Close(t *testing.T) {
	key, err := ParseKey(strings.Repeat("ab", 32))
	require.NoError(t, err)

	material := key.Bytes()
	key.Close()

	assert.Equal(t, make([]byte, 32), material)
	assert.Equal(t, 0, key.Size())
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm("aes-gcm")
	require.NoError(t, err)
	assert.Equal(t, AESGCM, alg)

	alg, err = ParseAlgorithm("chacha20-poly1305")
	require.NoError(t, err)
	assert.Equal(t, ChaCha20, alg)

	_, err = ParseAlgorithm("des")
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}
