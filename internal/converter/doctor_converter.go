package converter

import (
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:         doctor.ID,
		Name:       doctor.Name,
		Specialty:  doctor.Specialty,
		Image:      doctor.Image,
		Rating:     doctor.Rating.Round(1).InexactFloat64(),
		Experience: doctor.Experience,
		About:      doctor.About,
		Education:  doctor.Education,
		DetailURL:  "/doctors/" + doctor.ID.String(),
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
