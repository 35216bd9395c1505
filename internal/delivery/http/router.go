package http

import (
	"net/http"

	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/handler"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/pkg/response"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	doctorHandler       *handler.DoctorHandler
	appointmentHandler  *handler.AppointmentHandler
	profileHandler      *handler.ProfileHandler
	emergencyHandler    *handler.EmergencyHandler
	adminHandler        *handler.AdminHandler
	auditLogHandler     *handler.AuditLogHandler
	viewHandler         *handler.ViewHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	accessLogMiddleware *middleware.AccessLogMiddleware
	metricsHandler      http.Handler
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	profileHandler *handler.ProfileHandler,
	emergencyHandler *handler.EmergencyHandler,
	adminHandler *handler.AdminHandler,
	auditLogHandler *handler.AuditLogHandler,
	viewHandler *handler.ViewHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	accessLogMiddleware *middleware.AccessLogMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		doctorHandler:       doctorHandler,
		appointmentHandler:  appointmentHandler,
		profileHandler:      profileHandler,
		emergencyHandler:    emergencyHandler,
		adminHandler:        adminHandler,
		auditLogHandler:     auditLogHandler,
		viewHandler:         viewHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		accessLogMiddleware: accessLogMiddleware,
		metricsHandler:      promhttp.Handler(),
	}
}

// WithMetricsHandler replaces the /metrics handler, e.g. with one bound to a
// private registry in tests.
func (r *Router) WithMetricsHandler(h http.Handler) *Router {
	r.metricsHandler = h
	return r
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(r.accessLogMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.NotFoundHandler = r.wrap(http.HandlerFunc(r.apiNotFound))

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.SignUp).Methods(http.MethodPost)
	auth.HandleFunc("/signin", r.authHandler.SignIn).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/signout", r.authHandler.SignOut).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Directory (public)
	api.HandleFunc("/doctors", r.doctorHandler.GetDirectory).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Emergency SOS (public)
	api.HandleFunc("/emergency/categories", r.emergencyHandler.GetCategories).Methods(http.MethodGet)
	emergency := api.PathPrefix("/emergency").Subrouter()
	emergency.Use(r.authMiddleware.Identify)
	emergency.HandleFunc("/alerts", r.emergencyHandler.SendAlert).Methods(http.MethodPost)

	// Patient routes (protected)
	patient := api.NewRoute().Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/profile", r.profileHandler.GetProfile).Methods(http.MethodGet)
	patient.HandleFunc("/profile", r.profileHandler.UpdateProfile).Methods(http.MethodPut)
	patient.HandleFunc("/profile", r.profileHandler.DeleteAccount).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/appointments/{id}", r.adminHandler.UpdateAppointment).Methods(http.MethodPatch)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Views
	views := r.router.NewRoute().Subrouter()
	views.Use(r.authMiddleware.Identify)
	views.HandleFunc("/", r.viewHandler.Home).Methods(http.MethodGet)
	views.HandleFunc("/auth", r.viewHandler.Auth).Methods(http.MethodGet)
	views.HandleFunc("/doctors", r.viewHandler.Doctors).Methods(http.MethodGet)
	views.HandleFunc("/doctors/{id}", r.viewHandler.DoctorDetail).Methods(http.MethodGet)
	views.Handle("/appointments", middleware.RequireSession(http.HandlerFunc(r.viewHandler.Appointments))).Methods(http.MethodGet)
	views.Handle("/profile", middleware.RequireSession(http.HandlerFunc(r.viewHandler.Profile))).Methods(http.MethodGet)

	// Router middleware does not run for the not-found handler
	r.router.NotFoundHandler = r.wrap(r.authMiddleware.Identify(http.HandlerFunc(r.viewHandler.NotFound)))

	return r.router
}

func (r *Router) wrap(h http.Handler) http.Handler {
	return r.accessLogMiddleware.Handle(r.corsMiddleware.Handle(h))
}

func (r *Router) apiNotFound(w http.ResponseWriter, req *http.Request) {
	response.NotFound(w, "Resource not found")
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
