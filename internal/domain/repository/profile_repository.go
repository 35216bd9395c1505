package repository

import (
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(db *gorm.DB, profile *entity.Profile) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Profile, error)
	UpdateNames(db *gorm.DB, id uuid.UUID, names entity.ProfileNames) (int64, error)
}
