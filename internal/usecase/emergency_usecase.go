package usecase

import (
	"context"
	"errors"

	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
	"github.com/janhvi13092005/doc-talk-connect/internal/observability/metrics"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidEmergencyCategory = errors.New("unknown emergency category")
)

const (
	EmergencyAlertTitle       = "Emergency Alert Sent"
	EmergencyAlertDescription = "Medical assistance has been notified. Stay calm and wait for a response."
)

// EmergencyUsecase acknowledges SOS alerts. Alerts are recorded in the log
// and metrics only; nothing is dispatched to a responder.
type EmergencyUsecase interface {
	GetCategories() []dto.EmergencyCategoryResponse
	SendAlert(ctx context.Context, req *dto.EmergencyAlertRequest) (*dto.EmergencyAlertResponse, error)
}

type emergencyUsecase struct {
	log     *logrus.Logger
	metrics *metrics.BookingMetrics
}

func NewEmergencyUsecase(log *logrus.Logger, bookingMetrics *metrics.BookingMetrics) EmergencyUsecase {
	return &emergencyUsecase{
		log:     log,
		metrics: bookingMetrics,
	}
}

func (u *emergencyUsecase) GetCategories() []dto.EmergencyCategoryResponse {
	categories := make([]dto.EmergencyCategoryResponse, len(entity.EmergencyCategories))
	for i, c := range entity.EmergencyCategories {
		categories[i] = dto.EmergencyCategoryResponse{Value: string(c), Label: c.Label()}
	}
	return categories
}

func (u *emergencyUsecase) SendAlert(ctx context.Context, req *dto.EmergencyAlertRequest) (*dto.EmergencyAlertResponse, error) {
	category := entity.EmergencyCategory(req.Category)
	if category != "" && !category.IsValid() {
		return nil, ErrInvalidEmergencyCategory
	}

	fields := logrus.Fields{"category": string(category)}
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		fields["user_id"] = userID.String()
	}
	u.log.WithFields(fields).Warn("Emergency alert raised")
	u.metrics.ObserveEmergency(string(category))

	return &dto.EmergencyAlertResponse{
		Title:       EmergencyAlertTitle,
		Description: EmergencyAlertDescription,
		Category:    string(category),
	}, nil
}
