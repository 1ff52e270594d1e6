package app

import (
	"database/sql"
	"fmt"

	"github.com/allisson/securenotes/internal/database"
	notesHTTP "github.com/allisson/securenotes/internal/notes/http"
	notesRepository "github.com/allisson/securenotes/internal/notes/repository"
	notesUseCase "github.com/allisson/securenotes/internal/notes/usecase"
)

// NoteRepository picks the implementation matching DB_DRIVER.
func (c *Container) NoteRepository() (notesUseCase.NoteRepository, error) {
	return c.noteRepository.get(func() (notesUseCase.NoteRepository, error) {
		var newRepo func(db *sql.DB) notesUseCase.NoteRepository
		switch c.config.DBDriver {
		case database.DriverPostgres:
			newRepo = func(db *sql.DB) notesUseCase.NoteRepository {
				return notesRepository.NewPostgreSQLNoteRepository(db)
			}
		case database.DriverMySQL:
			newRepo = func(db *sql.DB) notesUseCase.NoteRepository {
				return notesRepository.NewMySQLNoteRepository(db)
			}
		default:
			return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}

		db, err := c.DB()
		if err != nil {
			return nil, err
		}
		return newRepo(db), nil
	})
}

// NoteUseCase returns the note lifecycle decorated with business metrics. The engine
// is resolved first so configuration errors surface before any connection attempt.
func (c *Container) NoteUseCase() (notesUseCase.NoteUseCase, error) {
	return c.noteUseCase.get(func() (notesUseCase.NoteUseCase, error) {
		engine, err := c.EncryptionEngine()
		if err != nil {
			return nil, err
		}

		txManager, err := c.TxManager()
		if err != nil {
			return nil, err
		}

		repo, err := c.NoteRepository()
		if err != nil {
			return nil, err
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, err
		}

		return notesUseCase.NewNoteUseCaseWithMetrics(
			notesUseCase.NewNoteUseCase(txManager, repo, engine),
			businessMetrics,
		), nil
	})
}

func (c *Container) NoteHandler() (*notesHTTP.NoteHandler, error) {
	return c.noteHandler.get(func() (*notesHTTP.NoteHandler, error) {
		useCase, err := c.NoteUseCase()
		if err != nil {
			return nil, err
		}
		return notesHTTP.NewNoteHandler(useCase, c.Logger()), nil
	})
}
