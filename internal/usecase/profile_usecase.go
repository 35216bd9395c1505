package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/janhvi13092005/doc-talk-connect/internal/converter"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/repository"
	"github.com/janhvi13092005/doc-talk-connect/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNotImplemented  = errors.New("this feature is not implemented yet")
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	DeleteAccount(ctx context.Context) error
}

type profileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	profileRepo  repository.ProfileRepository
	auditService service.AuditService
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		db:           db,
		log:          log,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}
	email, _ := middleware.GetUserEmailFromContext(ctx)

	profile, err := u.profileRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find profile %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.ProfileToResponse(profile, email), nil
}

// UpdateProfile changes the first and last name only. The email shown on the
// profile belongs to the account and cannot be edited here.
func (u *profileUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}
	email, _ := middleware.GetUserEmailFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	current, err := u.profileRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find profile %s: %+v", userID, err)
		return nil, err
	}
	if current == nil {
		return nil, ErrProfileNotFound
	}
	oldValue := converter.ProfileToResponse(current, email)

	names := entity.ProfileNames{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	if _, err := u.profileRepo.UpdateNames(tx, userID, names); err != nil {
		u.log.Warnf("Failed to update profile %s: %+v", userID, err)
		return nil, err
	}

	updated, err := u.profileRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to reload profile %s: %+v", userID, err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrProfileNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	newValue := converter.ProfileToResponse(updated, email)
	if err := u.auditService.LogUpdate(ctx, nil, &userID, entity.AuditActionProfileUpdate, "profile", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

// DeleteAccount is offered in the profile view but not supported.
func (u *profileUsecase) DeleteAccount(ctx context.Context) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrSessionRequired
	}
	u.log.Infof("Account deletion requested by %s; not implemented", userID)
	return ErrNotImplemented
}
