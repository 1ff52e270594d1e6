package domain

import (
	"github.com/allisson/securenotes/internal/errors"
)

// Note-specific error definitions.
var (
	// ErrNoteNotFound indicates no note exists with the requested id.
	ErrNoteNotFound = errors.Wrap(errors.ErrNotFound, "note not found")
)
