package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// BookAppointmentRequest carries no user id: the owner always comes from the session.
type BookAppointmentRequest struct {
	DoctorID string  `json:"doctor_id" validate:"required,uuid"`
	Date     string  `json:"date" validate:"omitempty,ymd"`
	Time     string  `json:"time" validate:"omitempty,hhmm"`
	Type     string  `json:"type"`
	Notes    *string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Notes  *string `json:"notes" validate:"omitempty,max=1000"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	DoctorSpecialty string    `json:"doctor_specialty,omitempty"`
	DoctorImage     string    `json:"doctor_image,omitempty"`
	AppointmentDate time.Time `json:"appointment_date"`
	Type            string    `json:"type"`
	TypeIcon        string    `json:"type_icon"`
	Status          string    `json:"status"`
	StatusColor     string    `json:"status_color"`
	CanCancel       bool      `json:"can_cancel"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
	Empty        bool                  `json:"empty"`
	FindDoctors  string                `json:"find_doctors,omitempty"`
}
