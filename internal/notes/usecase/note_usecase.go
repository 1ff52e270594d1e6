package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
	"github.com/allisson/securenotes/internal/database"
	apperrors "github.com/allisson/securenotes/internal/errors"
	notesDomain "github.com/allisson/securenotes/internal/notes/domain"
)

// noteUseCase implements NoteUseCase.
type noteUseCase struct {
	txManager database.TxManager
	noteRepo  NoteRepository
	cipher    ContentCipher
	now       func() time.Time
}

// Create validates the input, encrypts the content and stores the note. The returned
// note carries the content decrypted from the stored envelope.
func (n *noteUseCase) Create(ctx context.Context, input *notesDomain.NoteInput) (*notesDomain.Note, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	envelope, err := n.cipher.Encrypt([]byte(input.Content))
	if err != nil {
		return nil, err
	}

	now := n.now()
	note := &notesDomain.Note{
		Title:     input.Title,
		Content:   envelope,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	return n.open(note)
}

// Get retrieves and decrypts a note by id.
func (n *noteUseCase) Get(ctx context.Context, id int64) (*notesDomain.Note, error) {
	note, err := n.noteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return n.open(note)
}

// List retrieves and decrypts every note. A single record failing its integrity
// check fails the whole call; already decrypted content is zeroed first.
func (n *noteUseCase) List(ctx context.Context) ([]*notesDomain.Note, error) {
	notes, err := n.noteRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i, note := range notes {
		if _, err := n.open(note); err != nil {
			for _, opened := range notes[:i] {
				cryptoDomain.Zero(opened.Plaintext)
			}
			return nil, err
		}
	}

	return notes, nil
}

// Update replaces the title and content of an existing note. Content is always sealed
// under a fresh nonce, even when it did not change.
func (n *noteUseCase) Update(
	ctx context.Context,
	id int64,
	input *notesDomain.NoteInput,
) (*notesDomain.Note, error) {
	var note *notesDomain.Note
	err := n.txManager.WithTx(ctx, func(txCtx context.Context) error {
		current, err := n.noteRepo.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if err := input.Validate(); err != nil {
			return err
		}

		envelope, err := n.cipher.Encrypt([]byte(input.Content))
		if err != nil {
			return err
		}

		current.Title = input.Title
		current.Content = envelope
		current.UpdatedAt = n.now()

		if err := n.noteRepo.Update(txCtx, current); err != nil {
			return err
		}

		note = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return n.open(note)
}

// Delete removes a note by id.
func (n *noteUseCase) Delete(ctx context.Context, id int64) error {
	return n.noteRepo.Delete(ctx, id)
}

// open decrypts the note's envelope into Plaintext.
func (n *noteUseCase) open(note *notesDomain.Note) (*notesDomain.Note, error) {
	plaintext, err := n.cipher.Decrypt(note.Content)
	if err != nil {
		return nil, apperrors.Wrapf(err, "note %d", note.ID)
	}

	note.Plaintext = plaintext
	return note, nil
}

// NewNoteUseCase creates a new note use case instance with the provided dependencies.
func NewNoteUseCase(
	txManager database.TxManager,
	noteRepo NoteRepository,
	cipher ContentCipher,
) NoteUseCase {
	return &noteUseCase{
		txManager: txManager,
		noteRepo:  noteRepo,
		cipher:    cipher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}
