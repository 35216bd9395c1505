package handler

import (
	"encoding/json"
	"net/http"

	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/usecase"
	"github.com/janhvi13092005/doc-talk-connect/pkg/response"
	"github.com/janhvi13092005/doc-talk-connect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminHandler struct {
	adminAppointmentUsecase usecase.AdminAppointmentUsecase
	validator               *validator.CustomValidator
}

func NewAdminHandler(adminAppointmentUsecase usecase.AdminAppointmentUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminAppointmentUsecase: adminAppointmentUsecase,
		validator:               validator,
	}
}

func (h *AdminHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.adminAppointmentUsecase.UpdateAppointment(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidAppointmentStatus:
			response.BadRequest(w, "Invalid appointment status")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}
