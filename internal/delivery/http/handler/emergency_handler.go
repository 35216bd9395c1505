package handler

import (
	"encoding/json"
	"net/http"

	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/usecase"
	"github.com/janhvi13092005/doc-talk-connect/pkg/response"
	"github.com/janhvi13092005/doc-talk-connect/pkg/validator"
)

type EmergencyHandler struct {
	emergencyUsecase usecase.EmergencyUsecase
	validator        *validator.CustomValidator
}

func NewEmergencyHandler(emergencyUsecase usecase.EmergencyUsecase, validator *validator.CustomValidator) *EmergencyHandler {
	return &EmergencyHandler{
		emergencyUsecase: emergencyUsecase,
		validator:        validator,
	}
}

func (h *EmergencyHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Emergency categories retrieved successfully", h.emergencyUsecase.GetCategories())
}

// SendAlert accepts an empty body, which is the confirm-without-category action.
func (h *EmergencyHandler) SendAlert(w http.ResponseWriter, r *http.Request) {
	var req dto.EmergencyAlertRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	alert, err := h.emergencyUsecase.SendAlert(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidEmergencyCategory:
			response.BadRequest(w, "Unknown emergency category")
		default:
			response.InternalServerError(w, "Failed to send emergency alert")
		}
		return
	}

	response.Success(w, http.StatusOK, alert.Title, alert)
}
