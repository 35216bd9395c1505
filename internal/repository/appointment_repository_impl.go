package repository

import (
	"errors"

	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
	domainRepo "github.com/janhvi13092005/doc-talk-connect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Doctor").Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindByUserID returns the user's appointments with the doctor joined, newest scheduled date first.
func (r *appointmentRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").
		Where("user_id = ?", userID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// Cancel atomically cancels an appointment ONLY while it is pending or confirmed.
// Returns affected rows: 1 = cancelled, 0 = missing or no longer cancellable.
func (r *appointmentRepository) Cancel(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status IN ?", id, []entity.AppointmentStatus{
			entity.AppointmentStatusPending,
			entity.AppointmentStatusConfirmed,
		}).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}

// Update writes the administrative fields (status, notes) only.
func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Model(appointment).
		Select("status", "notes", "updated_at").
		Updates(appointment).Error
}
