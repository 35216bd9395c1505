package handler

import (
	"net/http"

	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/internal/usecase"
	"github.com/janhvi13092005/doc-talk-connect/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Page names carried in every view model.
const (
	PageHome         = "home"
	PageAuth         = "auth"
	PageDoctors      = "doctors"
	PageDoctorDetail = "doctor-detail"
	PageAppointments = "appointments"
	PageProfile      = "profile"
	PageNotFound     = "not-found"
)

// ViewHandler serves the browser routes as JSON view models. Identify must
// run first so the navigation reflects the session.
type ViewHandler struct {
	homeUsecase        usecase.HomeUsecase
	doctorUsecase      usecase.DoctorUsecase
	appointmentUsecase usecase.AppointmentUsecase
	profileUsecase     usecase.ProfileUsecase
}

func NewViewHandler(
	homeUsecase usecase.HomeUsecase,
	doctorUsecase usecase.DoctorUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	profileUsecase usecase.ProfileUsecase,
) *ViewHandler {
	return &ViewHandler{
		homeUsecase:        homeUsecase,
		doctorUsecase:      doctorUsecase,
		appointmentUsecase: appointmentUsecase,
		profileUsecase:     profileUsecase,
	}
}

func signedIn(r *http.Request) bool {
	_, ok := middleware.GetUserIDFromContext(r.Context())
	return ok
}

func (h *ViewHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, content interface{}) {
	view := dto.PageView{
		Page:       page,
		SignedIn:   signedIn(r),
		Navigation: usecase.Navigation(signedIn(r)),
		Content:    content,
	}
	response.JSON(w, status, response.Response{
		Success: status < http.StatusBadRequest,
		Data:    view,
	})
}

func (h *ViewHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, PageHome, h.homeUsecase.GetHome(r.Context()))
}

// Auth serves the sign-in/sign-up view. A visitor who already has a session
// is sent home.
func (h *ViewHandler) Auth(w http.ResponseWriter, r *http.Request) {
	if signedIn(r) {
		response.Redirect(w, r, "/")
		return
	}

	h.render(w, r, http.StatusOK, PageAuth, dto.AuthView{
		Title:      "Welcome to DocTalk",
		Subtitle:   "Your journey to better health starts here",
		InitialTab: "login",
		Actions: []dto.Action{
			{Label: "Sign In", Method: http.MethodPost, Href: "/api/v1/auth/signin"},
			{Label: "Sign Up", Method: http.MethodPost, Href: "/api/v1/auth/signup"},
		},
	})
}

func (h *ViewHandler) Doctors(w http.ResponseWriter, r *http.Request) {
	directory, err := h.doctorUsecase.GetDirectory(r.Context(), doctorFilterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to load doctors")
		return
	}

	h.render(w, r, http.StatusOK, PageDoctors, directory)
}

func (h *ViewHandler) DoctorDetail(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.doctorNotFound(w, r)
		return
	}

	detail, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			h.doctorNotFound(w, r)
			return
		}
		response.InternalServerError(w, "Failed to load doctor")
		return
	}

	view := dto.DoctorDetailView{
		DoctorDetailResponse: *detail,
		SignInRequired:       !signedIn(r),
		Book:                 dto.Action{Label: "Book Appointment", Method: http.MethodPost, Href: "/api/v1/appointments"},
	}
	if view.SignInRequired {
		view.Book = dto.Action{Label: "Sign In to Book", Method: http.MethodGet, Href: middleware.SignInPath}
	}

	h.render(w, r, http.StatusOK, PageDoctorDetail, view)
}

func (h *ViewHandler) doctorNotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, PageNotFound, dto.NotFoundView{
		Message: "Doctor Not Found",
		Back:    dto.NavLink{Label: "View All Doctors", Href: "/doctors"},
	})
}

func (h *ViewHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context())
	if err != nil {
		if err == usecase.ErrSessionRequired {
			response.Redirect(w, r, middleware.SignInPath)
			return
		}
		response.InternalServerError(w, "Failed to load appointments")
		return
	}

	h.render(w, r, http.StatusOK, PageAppointments, appointments)
}

func (h *ViewHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.GetProfile(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrSessionRequired:
			response.Redirect(w, r, middleware.SignInPath)
		case usecase.ErrProfileNotFound:
			h.NotFound(w, r)
		default:
			response.InternalServerError(w, "Failed to load profile")
		}
		return
	}

	h.render(w, r, http.StatusOK, PageProfile, dto.ProfileView{
		Profile:       *profile,
		Save:          dto.Action{Label: "Save Changes", Method: http.MethodPut, Href: "/api/v1/profile"},
		DeleteAccount: dto.Action{Label: "Delete Account", Method: http.MethodDelete, Href: "/api/v1/profile"},
	})
}

// NotFound is the catch-all view for unknown paths.
func (h *ViewHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, PageNotFound, dto.NotFoundView{
		Message: "Oops! Page not found",
		Back:    dto.NavLink{Label: "Return to Home", Href: "/"},
	})
}
