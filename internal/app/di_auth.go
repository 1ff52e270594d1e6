package app

import (
	"fmt"

	authDomain "github.com/allisson/securenotes/internal/auth/domain"
)

// Gate fails with an error wrapping ErrConfiguration when SECURITY_TOKEN is empty.
func (c *Container) Gate() (*authDomain.Gate, error) {
	return c.gate.get(func() (*authDomain.Gate, error) {
		gate, err := authDomain.NewGate(c.config.SecurityProtectedPrefix, c.config.SecurityToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create access gate: %w", err)
		}
		return gate, nil
	})
}
