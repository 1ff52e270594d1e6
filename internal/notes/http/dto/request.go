// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	notesDomain "github.com/allisson/securenotes/internal/notes/domain"
)

// NoteRequest is the body of POST /notes and PUT /notes/:id.
// Field validation happens in the use case so that update on an unknown id
// reports not found before any input error.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ToInput converts the request into the lifecycle input.
func (r *NoteRequest) ToInput() *notesDomain.NoteInput {
	return &notesDomain.NoteInput{
		Title:   r.Title,
		Content: r.Content,
	}
}
