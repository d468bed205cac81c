// Package dto holds the read-side payloads the rendering layer consumes.
package dto

import (
	"github.com/agnesederberg/Final-project-2/internal/models"

	"github.com/google/uuid"
)

type ProfileView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type FolderView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName,omitempty"`
	NoteCount    int       `json:"noteCount"`
}

type FolderDetailView struct {
	FolderView
	Notes []models.Note `json:"notes"`
}
