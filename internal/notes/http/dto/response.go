package dto

import (
	"time"

	notesDomain "github.com/allisson/securenotes/internal/notes/domain"
)

// NoteResponse represents a note in API responses. Content is the decrypted text.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MapNoteToResponse converts a decrypted domain note to an API response.
// SECURITY: the caller must zero note.Plaintext after mapping.
func MapNoteToResponse(note *notesDomain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   string(note.Plaintext),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// MapNotesToResponse converts a list of decrypted notes. An empty list maps to
// an empty JSON array, never null.
func MapNotesToResponse(notes []*notesDomain.Note) []NoteResponse {
	response := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		response = append(response, MapNoteToResponse(note))
	}
	return response
}
