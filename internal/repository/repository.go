// Package repository provides CRUD access to users, categories, folders
// and notes. Mutations are transactional: either the whole operation,
// cascades included, commits, or nothing does.
package repository

import (
	"context"
	"errors"

	"github.com/agnesederberg/Final-project-2/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means no row matched the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrConstraint means a uniqueness or foreign-key rule was broken.
	ErrConstraint = errors.New("constraint violation")
	// ErrUnavailable means the underlying store could not be reached.
	ErrUnavailable = errors.New("storage unavailable")
)

// UserReader is the read-only slice of the repository that validators
// receive. Validators must never mutate state.
type UserReader interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type UserRepository interface {
	UserReader
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUserName(ctx context.Context, id uuid.UUID, name string) error
	UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// DeleteUser removes the user and, in the same transaction, every
	// folder it owns and every note inside those folders.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type FolderRepository interface {
	CreateFolder(ctx context.Context, folder *models.Folder) error
	FindFolderByID(ctx context.Context, id uuid.UUID) (*models.Folder, error)
	ListFoldersByUser(ctx context.Context, userID uuid.UUID) ([]models.Folder, error)
	// DeleteFolder removes the folder and its notes in one transaction.
	DeleteFolder(ctx context.Context, id uuid.UUID) error
}

type NoteRepository interface {
	CreateNote(ctx context.Context, note *models.Note) error
	FindNoteByID(ctx context.Context, id uuid.UUID) (*models.Note, error)
	ListNotesByFolder(ctx context.Context, folderID uuid.UUID) ([]models.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error
}

// Repository bundles all entity access behind one handle so handlers
// can take a single dependency.
type Repository interface {
	UserRepository
	CategoryRepository
	FolderRepository
	NoteRepository
}
