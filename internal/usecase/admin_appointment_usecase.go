package usecase

import (
	"context"
	"errors"

	"github.com/janhvi13092005/doc-talk-connect/internal/converter"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/repository"
	"github.com/janhvi13092005/doc-talk-connect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
)

// AdminAppointmentUsecase covers staff-side changes such as confirming or
// completing an appointment.
type AdminAppointmentUsecase interface {
	UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
}

type adminAppointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAdminAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AdminAppointmentUsecase {
	return &adminAppointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *adminAppointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	adminID, _ := middleware.GetUserIDFromContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)

	if req.Status != nil {
		status := entity.AppointmentStatus(*req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidAppointmentStatus
		}
		appointment.Status = status
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	newValue := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(ctx, nil, &adminID, entity.AuditActionAppointmentUpdate, "appointment", appointmentID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}
