// Package usecase defines the note lifecycle: validation, encryption and persistence
// of notes.
package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
	notesDomain "github.com/allisson/securenotes/internal/notes/domain"
)

// ContentCipher seals and opens note content.
type ContentCipher interface {
	Encrypt(plaintext []byte) (cryptoDomain.Envelope, error)
	Decrypt(envelope cryptoDomain.Envelope) ([]byte, error)
}

// NoteRepository defines the interface for Note persistence operations.
type NoteRepository interface {
	// Create inserts the note and sets its ID.
	Create(ctx context.Context, note *notesDomain.Note) error
	Get(ctx context.Context, id int64) (*notesDomain.Note, error)
	// GetForUpdate is like Get but locks the row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*notesDomain.Note, error)
	List(ctx context.Context) ([]*notesDomain.Note, error)
	Update(ctx context.Context, note *notesDomain.Note) error
	Delete(ctx context.Context, id int64) error
}

// NoteUseCase defines the note lifecycle operations.
//
// Security Note: returned notes carry decrypted content in Plaintext. Callers MUST
// zero it after use by calling cryptoDomain.Zero(note.Plaintext).
type NoteUseCase interface {
	Create(ctx context.Context, input *notesDomain.NoteInput) (*notesDomain.Note, error)
	Get(ctx context.Context, id int64) (*notesDomain.Note, error)
	List(ctx context.Context) ([]*notesDomain.Note, error)
	Update(ctx context.Context, id int64, input *notesDomain.NoteInput) (*notesDomain.Note, error)
	Delete(ctx context.Context, id int64) error
}
