package domain

import (
	"github.com/allisson/securenotes/internal/errors"
)

// Access gate errors.
var (
	// ErrSecurityTokenNotSet indicates SECURITY_TOKEN is empty. The gate refuses to start
	// rather than accept an empty credential.
	ErrSecurityTokenNotSet = errors.Wrap(errors.ErrConfiguration, "security token not set")

	// ErrInvalidProtectedPrefix indicates the protected prefix is not an absolute path.
	ErrInvalidProtectedPrefix = errors.Wrap(errors.ErrConfiguration, "protected prefix must start with /")
)
