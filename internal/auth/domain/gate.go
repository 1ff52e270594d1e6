// Package domain defines the access gate that guards protected request paths.
package domain

import (
	"crypto/subtle"
	"path"
	"strings"
)

// Decision is the outcome of an access check.
type Decision int

const (
	// Deny rejects the request before it reaches any handler.
	Deny Decision = iota
	// Allow lets the request through.
	Allow
)

// String returns the decision name.
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Gate decides whether a request may reach a protected path.
//
// Paths under the protected prefix require a credential equal to the configured
// token. Every other path is allowed. A Gate is immutable and safe for concurrent use.
type Gate struct {
	prefix string
	token  []byte
}

// NewGate creates a Gate protecting prefix with token.
func NewGate(prefix, token string) (*Gate, error) {
	if token == "" {
		return nil, ErrSecurityTokenNotSet
	}
	if !strings.HasPrefix(prefix, "/") {
		return nil, ErrInvalidProtectedPrefix
	}

	return &Gate{prefix: prefix, token: []byte(token)}, nil
}

// Prefix returns the protected path prefix.
func (g *Gate) Prefix() string {
	return g.prefix
}

// Protects reports whether p falls under the protected prefix, either as sent or
// after cleaning dot segments and duplicate slashes.
func (g *Gate) Protects(p string) bool {
	return strings.HasPrefix(p, g.prefix) || strings.HasPrefix(path.Clean("/"+p), g.prefix)
}

// Authorize returns Allow for unprotected paths. For protected paths it returns Allow
// only when credential is present and equal to the configured token.
func (g *Gate) Authorize(p string, credential *string) Decision {
	if !g.Protects(p) {
		return Allow
	}
	if credential == nil {
		return Deny
	}
	if subtle.ConstantTimeCompare([]byte(*credential), g.token) != 1 {
		return Deny
	}
	return Allow
}
