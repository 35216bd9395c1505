package handler

import (
	"net/http"
	"strings"

	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
	"github.com/janhvi13092005/doc-talk-connect/internal/usecase"
	"github.com/janhvi13092005/doc-talk-connect/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

// doctorFilterFromQuery reads ?name= and ?specialty=. "all" means no specialty filter.
func doctorFilterFromQuery(r *http.Request) entity.DoctorFilter {
	query := r.URL.Query()
	specialty := strings.TrimSpace(query.Get("specialty"))
	if strings.EqualFold(specialty, "all") {
		specialty = ""
	}
	return entity.DoctorFilter{
		Name:      strings.TrimSpace(query.Get("name")),
		Specialty: specialty,
	}
}

func (h *DoctorHandler) GetDirectory(w http.ResponseWriter, r *http.Request) {
	directory, err := h.doctorUsecase.GetDirectory(r.Context(), doctorFilterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", directory)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		// A malformed id can never match a doctor
		response.NotFound(w, "Doctor not found")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}
