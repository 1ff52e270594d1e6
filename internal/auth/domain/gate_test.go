package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/securenotes/internal/errors"
)

func ptr(s string) *string {
	return &s
}

func TestNewGate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		gate, err := NewGate("/notes", "static-token-123")
		require.NoError(t, err)
		assert.Equal(t, "/notes", gate.Prefix())
	})

	t.Run("empty token", func(t *testing.T) {
		gate, err := NewGate("/notes", "")
		assert.ErrorIs(t, err, ErrSecurityTokenNotSet)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
		assert.Nil(t, gate)
	})

	t.Run("relative prefix", func(t *testing.T) {
		gate, err := NewGate("notes", "token")
		assert.ErrorIs(t, err, ErrInvalidProtectedPrefix)
		assert.Nil(t, gate)
	})
}

func TestGate_Authorize(t *testing.T) {
	const token = "Bearer static-token-123"
	gate, err := NewGate("/notes", token)
	require.NoError(t, err)

	tests := []struct {
		name       string
		path       string
		credential *string
		want       Decision
	}{
		{name: "protected with valid token", path: "/notes", credential: ptr(token), want: Allow},
		{name: "protected subpath with valid token", path: "/notes/42", credential: ptr(token), want: Allow},
		{name: "protected without token", path: "/notes", credential: nil, want: Deny},
		{name: "protected with empty token", path: "/notes/1", credential: ptr(""), want: Deny},
		{name: "protected with wrong token", path: "/notes", credential: ptr("Bearer nope"), want: Deny},
		{name: "protected with token prefix only", path: "/notes", credential: ptr("Bearer static"), want: Deny},
		{name: "protected with token plus suffix", path: "/notes", credential: ptr(token + " "), want: Deny},
		{name: "protected with different case", path: "/notes", credential: ptr("bearer static-token-123"), want: Deny},
		{name: "protected via duplicate slash", path: "//notes", credential: nil, want: Deny},
		{name: "protected via dot segment", path: "/health/../notes/1", credential: nil, want: Deny},
		{name: "prefix match without separator", path: "/notesarchive", credential: nil, want: Deny},
		{name: "unprotected without token", path: "/health", credential: nil, want: Allow},
		{name: "unprotected with wrong token", path: "/ready", credential: ptr("wrong"), want: Allow},
		{name: "root path", path: "/", credential: nil, want: Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.Authorize(tt.path, tt.credential))
		})
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "deny", Deny.String())
}
