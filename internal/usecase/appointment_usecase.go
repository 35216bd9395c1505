package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/janhvi13092005/doc-talk-connect/internal/converter"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/repository"
	"github.com/janhvi13092005/doc-talk-connect/internal/observability/metrics"
	"github.com/janhvi13092005/doc-talk-connect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSessionRequired           = errors.New("please log in to continue")
	ErrDateTimeRequired          = errors.New("please select a date and time for your appointment")
	ErrInvalidConsultationType   = errors.New("consultation type must be one of video, voice, chat, in-person")
	ErrBookingFailed             = errors.New("failed to book appointment, please try again")
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrAppointmentNotOwned       = errors.New("appointment does not belong to you")
	ErrAppointmentNotCancellable = errors.New("only pending or confirmed appointments can be cancelled")
	ErrCancellationInFlight      = service.ErrCancellationInFlight
	ErrCancelFailed              = errors.New("failed to cancel appointment")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
	cancelGuard     service.CancellationGuard
	metrics         *metrics.BookingMetrics
	window          BookingWindow
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	cancelGuard service.CancellationGuard,
	bookingMetrics *metrics.BookingMetrics,
	window BookingWindow,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
		cancelGuard:     cancelGuard,
		metrics:         bookingMetrics,
		window:          window,
		now:             time.Now,
	}
}

// BookAppointment requests a consultation with a doctor.
//
// Checks run in order and stop at the first failure:
// 1. A session is present
// 2. Both date and time were chosen (no store access before this passes)
// 3. The channel is known, defaulting to video
// 4. Date and time fall inside the booking window
// 5. The doctor exists
//
// The appointment is created pending and owned by the session user.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}

	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		return nil, ErrDateTimeRequired
	}

	channel := entity.ConsultationType(req.Type)
	if channel == "" {
		channel = entity.DefaultConsultationType
	}
	if !channel.IsValid() {
		return nil, ErrInvalidConsultationType
	}

	appointmentDate, err := u.window.Resolve(u.now(), req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, ErrBookingFailed
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		UserID:          userID,
		DoctorID:        doctor.ID,
		AppointmentDate: appointmentDate,
		Type:            channel,
		Status:          entity.AppointmentStatusPending,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, ErrBookingFailed
	}
	appointment.Doctor = doctor

	resp := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(ctx, nil, &userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), resp); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	u.metrics.ObserveBooked(string(channel))

	u.log.Infof("Appointment requested: id=%s, doctor=%s, at=%s, type=%s", appointment.ID, doctor.ID, appointmentDate.Format(time.RFC3339), channel)
	return resp, nil
}

// GetMyAppointments returns the session user's appointments, latest date first.
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}

	appointments, err := u.appointmentRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for user %s: %+v", userID, err)
		return nil, err
	}

	resp := &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
		Empty:        len(appointments) == 0,
	}
	if resp.Empty {
		resp.FindDoctors = directoryPath
	}
	return resp, nil
}

// CancelAppointment cancels one of the session user's appointments and
// returns the updated row so the caller can patch it in place.
//
// Flow:
// 1. Find appointment and verify ownership
// 2. Verify it is still pending or confirmed
// 3. Take the per-appointment guard (a concurrent cancel of the same row fails fast)
// 4. Conditional update to cancelled
// 5. Release the guard on every path
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, ErrCancelFailed
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.IsOwnedBy(userID) {
		return nil, ErrAppointmentNotOwned
	}
	if !appointment.IsCancellable() {
		return nil, ErrAppointmentNotCancellable
	}

	release, err := u.cancelGuard.Acquire(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, service.ErrCancellationInFlight) {
			return nil, ErrCancellationInFlight
		}
		return nil, ErrCancelFailed
	}
	defer release()

	affected, err := u.appointmentRepo.Cancel(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return nil, ErrCancelFailed
	}
	if affected == 0 {
		// Status moved on between the read and the update
		return nil, ErrAppointmentNotCancellable
	}

	previous := appointment.Status
	appointment.Cancel()

	if err := u.auditService.LogUpdate(ctx, nil, &userID, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(), previous, appointment.Status); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	u.metrics.ObserveCancelled()

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return converter.AppointmentToResponse(appointment), nil
}
