package repository

import (
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	FindTopRated(db *gorm.DB, limit int) ([]entity.Doctor, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
}
