package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/agnesederberg/Final-project-2/internal/models"

	"github.com/google/uuid"
)

// Memory is an in-process Repository used by tests and the validator
// tests in particular, so nothing below the handlers needs Postgres.
// It enforces the same uniqueness and foreign-key rules the schema does.
type Memory struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]models.User
	categories map[uuid.UUID]models.Category
	folders    map[uuid.UUID]models.Folder
	notes      map[uuid.UUID]models.Note
}

func NewMemory() *Memory {
	return &Memory{
		users:      make(map[uuid.UUID]models.User),
		categories: make(map[uuid.UUID]models.Category),
		folders:    make(map[uuid.UUID]models.Folder),
		notes:      make(map[uuid.UUID]models.Note),
	}
}

func (m *Memory) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return ErrConstraint
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) FindUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *Memory) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateUserName(_ context.Context, id uuid.UUID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	u.Name = name
	m.users[id] = u
	return nil
}

func (m *Memory) UpdateUserPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = passwordHash
	m.users[id] = u
	return nil
}

func (m *Memory) DeleteUser(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	for fid, f := range m.folders {
		if f.UserID != id {
			continue
		}
		for nid, n := range m.notes {
			if n.FolderID == fid {
				delete(m.notes, nid)
			}
		}
		delete(m.folders, fid)
	}
	delete(m.users, id)
	return nil
}

func (m *Memory) CreateCategory(_ context.Context, category *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	m.categories[category.ID] = *category
	return nil
}

func (m *Memory) FindCategoryByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *Memory) ListCategories(_ context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	categories := make([]models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (m *Memory) CreateFolder(_ context.Context, folder *models.Folder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[folder.UserID]; !ok {
		return ErrConstraint
	}
	if _, ok := m.categories[folder.CategoryID]; !ok {
		return ErrConstraint
	}
	if folder.ID == uuid.Nil {
		folder.ID = uuid.New()
	}
	m.folders[folder.ID] = *folder
	return nil
}

func (m *Memory) FindFolderByID(_ context.Context, id uuid.UUID) (*models.Folder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.folders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &f, nil
}

func (m *Memory) ListFoldersByUser(_ context.Context, userID uuid.UUID) ([]models.Folder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var folders []models.Folder
	for _, f := range m.folders {
		if f.UserID == userID {
			folders = append(folders, f)
		}
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].CreatedAt.Before(folders[j].CreatedAt) })
	return folders, nil
}

func (m *Memory) DeleteFolder(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.folders[id]; !ok {
		return ErrNotFound
	}
	for nid, n := range m.notes {
		if n.FolderID == id {
			delete(m.notes, nid)
		}
	}
	delete(m.folders, id)
	return nil
}

func (m *Memory) CreateNote(_ context.Context, note *models.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.folders[note.FolderID]; !ok {
		return ErrConstraint
	}
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	m.notes[note.ID] = *note
	return nil
}

func (m *Memory) FindNoteByID(_ context.Context, id uuid.UUID) (*models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.notes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &n, nil
}

func (m *Memory) ListNotesByFolder(_ context.Context, folderID uuid.UUID) ([]models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var notes []models.Note
	for _, n := range m.notes {
		if n.FolderID == folderID {
			notes = append(notes, n)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt.Before(notes[j].CreatedAt) })
	return notes, nil
}

func (m *Memory) DeleteNote(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notes[id]; !ok {
		return ErrNotFound
	}
	delete(m.notes, id)
	return nil
}

// UserCount reports the number of stored users. Tests use it to assert
// that failed registrations leave the table untouched.
func (m *Memory) UserCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}
