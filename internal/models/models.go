package models

import (
	"time"

	"github.com/google/uuid"
)

// User owns folders. Deleting a user cascades to its folders and,
// through them, to their notes.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Email        string    `gorm:"size:128;not null;unique" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Folders []Folder `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Category groups folders. It is seed data, not owned by any user;
// managing categories is an admin concern outside the request handlers.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Folder struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"size:128;not null" json:"name"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null" json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
	Notes    []Note   `gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE" json:"-"`
}

type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Data      string    `gorm:"size:1000;not null" json:"data"`
	FolderID  uuid.UUID `gorm:"type:uuid;not null" json:"folderId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
