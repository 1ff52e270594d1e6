package repository

import (
	"context"
	"database/sql"

	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
	"github.com/allisson/securenotes/internal/database"
	apperrors "github.com/allisson/securenotes/internal/errors"
	notesDomain "github.com/allisson/securenotes/internal/notes/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*notesDomain.Note, error) {
	var note notesDomain.Note
	var content string
	if err := row.Scan(&note.ID, &note.Title, &content, &note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}
	note.Content = cryptoDomain.Envelope(content)
	return &note, nil
}

func listNotes(ctx context.Context, querier database.Querier, query string) ([]*notesDomain.Note, error) {
	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notes")
	}
	defer func() {
		_ = rows.Close()
	}()

	notes := make([]*notesDomain.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan note")
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate notes")
	}

	return notes, nil
}

func requireAffected(result sql.Result, message string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, message)
	}
	if affected == 0 {
		return notesDomain.ErrNoteNotFound
	}
	return nil
}
