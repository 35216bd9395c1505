package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile shares its ID with the authenticated user. It is created at signup.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName *string   `gorm:"type:varchar(100)" json:"first_name,omitempty"`
	LastName  *string   `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	AvatarURL *string   `gorm:"type:text" json:"avatar_url,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// ProfileNames holds the only profile fields a user may edit.
type ProfileNames struct {
	FirstName string
	LastName  string
}
