package handler

import (
	"encoding/json"
	"net/http"

	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/internal/usecase"
	"github.com/janhvi13092005/doc-talk-connect/pkg/response"
	"github.com/janhvi13092005/doc-talk-connect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const appointmentsPath = "/appointments"

// BookedAppointment is returned after a successful booking. Redirect points
// the client at its appointment list.
type BookedAppointment struct {
	Appointment *dto.AppointmentResponse `json:"appointment"`
	Redirect    string                   `json:"redirect"`
}

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.BookAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSessionRequired:
			response.SessionRequired(w, middleware.SignInPath)
		case usecase.ErrDateTimeRequired:
			response.BadRequest(w, "Please select a date and time for your appointment")
		case usecase.ErrInvalidConsultationType:
			response.BadRequest(w, "Consultation type must be one of video, voice, chat, in-person")
		case usecase.ErrSlotUnavailable:
			response.BadRequest(w, "The selected date or time is not available")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to book appointment. Please try again.")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment requested successfully", BookedAppointment{
		Appointment: appointment,
		Redirect:    appointmentsPath,
	})
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrSessionRequired:
			response.SessionRequired(w, middleware.SignInPath)
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.NotFound(w, "Appointment not found")
		return
	}

	appointment, err := h.appointmentUsecase.CancelAppointment(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrSessionRequired:
			response.SessionRequired(w, middleware.SignInPath)
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "You can only cancel your own appointments")
		case usecase.ErrAppointmentNotCancellable:
			response.Conflict(w, "Only pending or confirmed appointments can be cancelled")
		case usecase.ErrCancellationInFlight:
			response.Conflict(w, "This appointment is already being cancelled")
		default:
			response.InternalServerError(w, "Failed to cancel appointment. Please try again.")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}
