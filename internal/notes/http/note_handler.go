// Package http provides HTTP handlers for note lifecycle operations.
// Handlers only ever see decrypted content; storage sees the encrypted envelope.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
	"github.com/allisson/securenotes/internal/httputil"
	notesDomain "github.com/allisson/securenotes/internal/notes/domain"
	"github.com/allisson/securenotes/internal/notes/http/dto"
	notesUseCase "github.com/allisson/securenotes/internal/notes/usecase"
)

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	noteUseCase notesUseCase.NoteUseCase
	logger      *slog.Logger
}

// NewNoteHandler creates a new note handler with required dependencies.
func NewNoteHandler(noteUseCase notesUseCase.NoteUseCase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		noteUseCase: noteUseCase,
		logger:      logger,
	}
}

// RegisterRoutes mounts the note routes on the given group.
func (h *NoteHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("", h.CreateHandler)
	group.GET("", h.ListHandler)
	group.GET("/:id", h.GetHandler)
	group.PUT("/:id", h.UpdateHandler)
	group.DELETE("/:id", h.DeleteHandler)
}

// CreateHandler creates a note.
// POST /notes - Returns 200 OK with the stored note, content decrypted.
func (h *NoteHandler) CreateHandler(c *gin.Context) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	note, err := h.noteUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer cryptoDomain.Zero(note.Plaintext)

	c.JSON(http.StatusOK, dto.MapNoteToResponse(note))
}

// ListHandler returns every note as a JSON array.
// GET /notes
func (h *NoteHandler) ListHandler(c *gin.Context) {
	notes, err := h.noteUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer func() {
		for _, note := range notes {
			cryptoDomain.Zero(note.Plaintext)
		}
	}()

	c.JSON(http.StatusOK, dto.MapNotesToResponse(notes))
}

// GetHandler returns a single note.
// GET /notes/:id
func (h *NoteHandler) GetHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	note, err := h.noteUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer cryptoDomain.Zero(note.Plaintext)

	c.JSON(http.StatusOK, dto.MapNoteToResponse(note))
}

// UpdateHandler replaces the title and content of a note.
// PUT /notes/:id - Returns 200 OK with the updated note.
func (h *NoteHandler) UpdateHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	note, err := h.noteUseCase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer cryptoDomain.Zero(note.Plaintext)

	c.JSON(http.StatusOK, dto.MapNoteToResponse(note))
}

// DeleteHandler removes a note.
// DELETE /notes/:id - Returns 204 No Content.
func (h *NoteHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.noteUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID reads the :id parameter. An id that cannot name a stored note
// (non-numeric, zero or negative) is reported as not found.
func (h *NoteHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.HandleErrorGin(c, notesDomain.ErrNoteNotFound, h.logger)
		return 0, false
	}
	return id, true
}
