package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/securenotes/internal/database"
	apperrors "github.com/allisson/securenotes/internal/errors"
	notesDomain "github.com/allisson/securenotes/internal/notes/domain"
)

// MySQLNoteRepository implements note persistence for MySQL.
// The DSN must set parseTime=true so timestamps scan into time.Time.
type MySQLNoteRepository struct {
	db *sql.DB
}

// Create inserts a note and sets its ID from LAST_INSERT_ID().
func (m *MySQLNoteRepository) Create(ctx context.Context, note *notesDomain.Note) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO notes (title, content_encrypted, created_at, updated_at)
			  VALUES (?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		note.Title,
		string(note.Content),
		note.CreatedAt,
		note.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create note")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read note id")
	}
	note.ID = id
	return nil
}

// Get retrieves a note by id.
func (m *MySQLNoteRepository) Get(ctx context.Context, id int64) (*notesDomain.Note, error) {
	query := `SELECT id, title, content_encrypted, created_at, updated_at
			  FROM notes
			  WHERE id = ?`

	return m.getOne(ctx, query, id)
}

// GetForUpdate retrieves a note by id and locks its row for the current transaction.
func (m *MySQLNoteRepository) GetForUpdate(ctx context.Context, id int64) (*notesDomain.Note, error) {
	query := `SELECT id, title, content_encrypted, created_at, updated_at
			  FROM notes
			  WHERE id = ?
			  FOR UPDATE`

	return m.getOne(ctx, query, id)
}

func (m *MySQLNoteRepository) getOne(ctx context.Context, query string, id int64) (*notesDomain.Note, error) {
	querier := database.GetTx(ctx, m.db)

	note, err := scanNote(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notesDomain.ErrNoteNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get note")
	}
	return note, nil
}

// List retrieves all notes ordered by id.
func (m *MySQLNoteRepository) List(ctx context.Context) ([]*notesDomain.Note, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, content_encrypted, created_at, updated_at
			  FROM notes
			  ORDER BY id ASC`

	return listNotes(ctx, querier, query)
}

// Update overwrites title, content and updated_at in a single statement.
// A fresh envelope is written on every update, so the row always changes and
// RowsAffected is non-zero for an existing note.
func (m *MySQLNoteRepository) Update(ctx context.Context, note *notesDomain.Note) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE notes
			  SET title = ?, content_encrypted = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, note.Title, string(note.Content), note.UpdatedAt, note.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update note")
	}
	return requireAffected(result, "failed to update note")
}

// Delete removes a note by id.
func (m *MySQLNoteRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete note")
	}
	return requireAffected(result, "failed to delete note")
}

// NewMySQLNoteRepository creates a new MySQL note repository instance.
func NewMySQLNoteRepository(db *sql.DB) *MySQLNoteRepository {
	return &MySQLNoteRepository{db: db}
}
