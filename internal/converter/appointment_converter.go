package converter

import (
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Badge color, icon and the cancel affordance are derived from status and type.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		UserID:          appointment.UserID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		Type:            string(appointment.Type),
		TypeIcon:        appointment.Type.Icon(),
		Status:          string(appointment.Status),
		StatusColor:     appointment.Status.BadgeColor(),
		CanCancel:       appointment.IsCancellable(),
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Doctor != nil {
		response.DoctorName = appointment.Doctor.Name
		response.DoctorSpecialty = appointment.Doctor.Specialty
		response.DoctorImage = appointment.Doctor.Image
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
