package handler

import (
	"encoding/json"
	"net/http"

	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/internal/usecase"
	"github.com/janhvi13092005/doc-talk-connect/pkg/response"
	"github.com/janhvi13092005/doc-talk-connect/pkg/validator"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.GetProfile(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrSessionRequired:
			response.SessionRequired(w, middleware.SignInPath)
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.UpdateProfile(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSessionRequired:
			response.SessionRequired(w, middleware.SignInPath)
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}

func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	err := h.profileUsecase.DeleteAccount(r.Context())
	switch err {
	case nil:
		response.Success(w, http.StatusOK, "Account deleted", nil)
	case usecase.ErrNotImplemented:
		response.NotImplemented(w, "This feature is not implemented yet")
	default:
		response.InternalServerError(w, "Failed to delete account")
	}
}
