package note

import (
	"context"
	"time"
)

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SaveNoteRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
	Color   string `json:"color" form:"color"`
}

// UpdateNoteRequest patches only the non-nil fields.
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Color   *string `json:"color,omitempty"`
}

type INoteUsecase interface {
	SaveNote(ctx context.Context, userID string, request SaveNoteRequest) (Note, error)
	GetNotes(ctx context.Context, userID string) ([]Note, error)
	UpdateNote(ctx context.Context, userID, noteID string, request UpdateNoteRequest) error
	DeleteNote(ctx context.Context, userID, noteID string) error
}
