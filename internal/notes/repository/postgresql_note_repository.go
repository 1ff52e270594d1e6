// Package repository implements note persistence for PostgreSQL and MySQL.
// Only the encrypted envelope is ever written to the content_encrypted column.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/securenotes/internal/database"
	apperrors "github.com/allisson/securenotes/internal/errors"
	notesDomain "github.com/allisson/securenotes/internal/notes/domain"
)

// PostgreSQLNoteRepository implements note persistence for PostgreSQL.
type PostgreSQLNoteRepository struct {
	db *sql.DB
}

// Create inserts a note and sets its ID from the generated identity column.
func (p *PostgreSQLNoteRepository) Create(ctx context.Context, note *notesDomain.Note) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO notes (title, content_encrypted, created_at, updated_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		note.Title,
		string(note.Content),
		note.CreatedAt,
		note.UpdatedAt,
	).Scan(&note.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create note")
	}
	return nil
}

// Get retrieves a note by id.
func (p *PostgreSQLNoteRepository) Get(ctx context.Context, id int64) (*notesDomain.Note, error) {
	query := `SELECT id, title, content_encrypted, created_at, updated_at
			  FROM notes
			  WHERE id = $1`

	return p.getOne(ctx, query, id)
}

// GetForUpdate retrieves a note by id and locks its row for the current transaction.
func (p *PostgreSQLNoteRepository) GetForUpdate(ctx context.Context, id int64) (*notesDomain.Note, error) {
	query := `SELECT id, title, content_encrypted, created_at, updated_at
			  FROM notes
			  WHERE id = $1
			  FOR UPDATE`

	return p.getOne(ctx, query, id)
}

func (p *PostgreSQLNoteRepository) getOne(ctx context.Context, query string, id int64) (*notesDomain.Note, error) {
	querier := database.GetTx(ctx, p.db)

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
func (p *PostgreSQLNoteRepository) List(ctx context.Context) ([]*notesDomain.Note, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, content_encrypted, created_at, updated_at
			  FROM notes
			  ORDER BY id ASC`

	return listNotes(ctx, querier, query)
}

// Update overwrites title, content and updated_at in a single statement.
func (p *PostgreSQLNoteRepository) Update(ctx context.Context, note *notesDomain.Note) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE notes
			  SET title = $1, content_encrypted = $2, updated_at = $3
			  WHERE id = $4`

	result, err := querier.ExecContext(ctx, query, note.Title, string(note.Content), note.UpdatedAt, note.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update note")
	}
	return requireAffected(result, "failed to update note")
}

// Delete removes a note by id.
func (p *PostgreSQLNoteRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete note")
	}
	return requireAffected(result, "failed to delete note")
}

// NewPostgreSQLNoteRepository creates a new PostgreSQL note repository instance.
func NewPostgreSQLNoteRepository(db *sql.DB) *PostgreSQLNoteRepository {
	return &PostgreSQLNoteRepository{db: db}
}
