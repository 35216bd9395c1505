package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ConsultationType is the channel an appointment takes place over
type ConsultationType string

const (
	ConsultationVideo    ConsultationType = "video"
	ConsultationVoice    ConsultationType = "voice"
	ConsultationChat     ConsultationType = "chat"
	ConsultationInPerson ConsultationType = "in-person"
)

// ConsultationTypes lists the channels in the order they are offered.
var ConsultationTypes = []ConsultationType{
	ConsultationVideo,
	ConsultationVoice,
	ConsultationChat,
	ConsultationInPerson,
}

// DefaultConsultationType is preselected when booking.
const DefaultConsultationType = ConsultationVideo

// Appointment is owned by the user that booked it. Doctor is populated by a join
// at read time and is never written through this struct.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"type:timestamptz;not null;index" json:"appointment_date"`
	Type            ConsultationType  `gorm:"type:consultation_type;not null;default:'video'" json:"type"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`
	Notes           *string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsValid reports whether s is a known status.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// IsCancellable is true only for pending and confirmed appointments.
func (s AppointmentStatus) IsCancellable() bool {
	return s == AppointmentStatusPending || s == AppointmentStatusConfirmed
}

// IsTerminal is true for completed and cancelled appointments.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// BadgeColor returns the display color of the status badge.
func (s AppointmentStatus) BadgeColor() string {
	switch s {
	case AppointmentStatusPending:
		return "yellow"
	case AppointmentStatusConfirmed:
		return "green"
	case AppointmentStatusCompleted:
		return "blue"
	case AppointmentStatusCancelled:
		return "red"
	default:
		return "gray"
	}
}

// IsValid reports whether t is a known consultation channel.
func (t ConsultationType) IsValid() bool {
	for _, known := range ConsultationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Icon returns the icon name shown next to the channel.
func (t ConsultationType) Icon() string {
	switch t {
	case ConsultationVideo:
		return "video"
	case ConsultationVoice:
		return "phone"
	case ConsultationChat:
		return "message-square"
	case ConsultationInPerson:
		return "map-pin"
	default:
		return ""
	}
}

// IsCancellable checks if the appointment can still be cancelled by its owner
func (a *Appointment) IsCancellable() bool {
	return a.Status.IsCancellable()
}

// IsOwnedBy checks if the appointment belongs to userID
func (a *Appointment) IsOwnedBy(userID uuid.UUID) bool {
	return a.UserID == userID
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
