package app

import (
	"fmt"
	"log/slog"

	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
	cryptoService "github.com/allisson/securenotes/internal/crypto/service"
)

func (c *Container) AEADManager() cryptoService.AEADManager {
	return c.aeadManager.must(func() cryptoService.AEADManager {
		return cryptoService.NewAEADManager()
	})
}

// EncryptionEngine returns the engine sealing note content. Errors wrap
// ErrConfiguration when ENCRYPTION_SECRET or ENCRYPTION_ALGORITHM is invalid.
//
// The parsed key is zeroed once the cipher holds its own expanded copy.
func (c *Container) EncryptionEngine() (*cryptoService.Engine, error) {
	return c.engine.get(func() (*cryptoService.Engine, error) {
		alg, err := cryptoDomain.ParseAlgorithm(c.config.EncryptionAlgorithm)
		if err != nil {
			return nil, fmt.Errorf("failed to parse encryption algorithm: %w", err)
		}

		key, err := cryptoDomain.ParseKey(c.config.EncryptionSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to parse encryption secret: %w", err)
		}
		defer key.Close()

		engine, err := cryptoService.NewEngine(key, alg, c.AEADManager())
		if err != nil {
			return nil, fmt.Errorf("failed to create encryption engine: %w", err)
		}

		c.Logger().Info("encryption engine ready",
			slog.String("algorithm", string(engine.Algorithm())),
			slog.Int("key_size", key.Size()))

		return engine, nil
	})
}
