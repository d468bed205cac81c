package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/agnesederberg/Final-project-2/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gorm is the Postgres-backed repository.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// classify maps driver errors onto the repository taxonomy. Callers
// above the repository only ever see the sentinel errors.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

func (r *Gorm) CreateUser(ctx context.Context, user *models.User) error {
	return classify(r.db.WithContext(ctx).Create(user).Error)
}

func (r *Gorm) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (r *Gorm) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (r *Gorm) UpdateUserName(ctx context.Context, id uuid.UUID, name string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Gorm) UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Gorm) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var folderIDs []uuid.UUID
		if err := tx.Model(&models.Folder{}).Where("user_id = ?", id).Pluck("id", &folderIDs).Error; err != nil {
			return err
		}
		if len(folderIDs) > 0 {
			if err := tx.Where("folder_id IN ?", folderIDs).Delete(&models.Note{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Folder{}).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return classify(err)
}

func (r *Gorm) CreateCategory(ctx context.Context, category *models.Category) error {
	return classify(r.db.WithContext(ctx).Create(category).Error)
}

func (r *Gorm) FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &category, nil
}

func (r *Gorm) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, classify(err)
	}
	return categories, nil
}

func (r *Gorm) CreateFolder(ctx context.Context, folder *models.Folder) error {
	return classify(r.db.WithContext(ctx).Create(folder).Error)
}

func (r *Gorm) FindFolderByID(ctx context.Context, id uuid.UUID) (*models.Folder, error) {
	var folder models.Folder
	if err := r.db.WithContext(ctx).First(&folder, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &folder, nil
}

func (r *Gorm) ListFoldersByUser(ctx context.Context, userID uuid.UUID) ([]models.Folder, error) {
	var folders []models.Folder
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&folders).Error; err != nil {
		return nil, classify(err)
	}
	return folders, nil
}

func (r *Gorm) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("folder_id = ?", id).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Folder{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return classify(err)
}

func (r *Gorm) CreateNote(ctx context.Context, note *models.Note) error {
	return classify(r.db.WithContext(ctx).Create(note).Error)
}

func (r *Gorm) FindNoteByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	var note models.Note
	if err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &note, nil
}

func (r *Gorm) ListNotesByFolder(ctx context.Context, folderID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.WithContext(ctx).Where("folder_id = ?", folderID).Order("created_at").Find(&notes).Error; err != nil {
		return nil, classify(err)
	}
	return notes, nil
}

func (r *Gorm) DeleteNote(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{})
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
