package models

import (
	"time"

	"github.com/google/uuid"
)

// User holds the credential record. Password stores the bcrypt hash and is
// never serialized.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    string    `gorm:"type:text" json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
