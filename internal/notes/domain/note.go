// Package domain defines the note model. Titles are stored in clear text; note
// content is only ever persisted as an encrypted envelope.
package domain

import (
	"time"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
	customValidation "github.com/allisson/securenotes/internal/validation"
)

const (
	// MaxTitleLength is the maximum title length in Unicode characters.
	MaxTitleLength = 255
	// MaxContentLength is the maximum content length in Unicode characters.
	MaxContentLength = 5000
)

// Note is a stored note.
type Note struct {
	// ID is assigned by the repository on creation and never changes.
	ID int64
	// Title is stored in clear text.
	Title string
	// Content is the encrypted envelope written to storage.
	Content cryptoDomain.Envelope
	// Plaintext holds the decrypted content in memory only; must be zeroed after use.
	Plaintext []byte `json:"-"`
	// CreatedAt is the UTC creation time.
	CreatedAt time.Time
	// UpdatedAt is the UTC time of the last update.
	UpdatedAt time.Time
}

// NoteInput carries the caller supplied fields for create and update.
type NoteInput struct {
	Title   string
	Content string
}

// Validate checks both fields are present, not blank and within their length limits.
func (n *NoteInput) Validate() error {
	err := validation.ValidateStruct(n,
		validation.Field(&n.Title, customValidation.RequiredText("title", MaxTitleLength)...),
		validation.Field(&n.Content, customValidation.RequiredText("content", MaxContentLength)...),
	)
	return customValidation.WrapValidationError(err)
}
