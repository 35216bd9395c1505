package repository

import (
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error)
	Cancel(db *gorm.DB, id uuid.UUID) (int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
