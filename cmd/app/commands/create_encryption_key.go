package commands

import (
	"fmt"
	"io"

	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
)

// RunCreateEncryptionKey writes a fresh random key as an ENCRYPTION_SECRET line.
// size must be 16 or 32 bytes. The key bytes are zeroed once encoded.
func RunCreateEncryptionKey(w io.Writer, size int) error {
	key, err := cryptoDomain.GenerateKey(size)
	if err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}
	defer key.Close()

	if _, err := fmt.Fprintf(w, "ENCRYPTION_SECRET=%q\n", key.Hex()); err != nil {
		return fmt.Errorf("failed to write encryption key: %w", err)
	}
	return nil
}
