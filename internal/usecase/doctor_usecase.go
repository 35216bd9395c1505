package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/janhvi13092005/doc-talk-connect/internal/converter"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

const directoryPath = "/doctors"

type DoctorUsecase interface {
	GetDirectory(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorDirectoryResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error)
	GetFeaturedDoctors(ctx context.Context, limit int) ([]dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	window     BookingWindow
	now        func() time.Time
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	window BookingWindow,
) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		window:     window,
		now:        time.Now,
	}
}

// GetDirectory fetches every doctor (best rated first) and filters in memory.
func (u *doctorUsecase) GetDirectory(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorDirectoryResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	filtered := FilterDoctors(doctors, filter)

	resp := &dto.DoctorDirectoryResponse{
		Doctors:     converter.DoctorsToResponses(filtered),
		Specialties: Specialties(doctors),
		Filter: dto.DoctorFilterResponse{
			Name:      filter.Name,
			Specialty: filter.Specialty,
		},
		Total: len(filtered),
		Empty: len(filtered) == 0,
	}
	if resp.Empty {
		resp.ClearFilters = directoryPath
	}

	return resp, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return &dto.DoctorDetailResponse{
		Doctor:  *converter.DoctorToResponse(doctor),
		Booking: u.window.Options(u.now()),
	}, nil
}

func (u *doctorUsecase) GetFeaturedDoctors(ctx context.Context, limit int) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindTopRated(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to find top rated doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

// FilterDoctors keeps doctors whose name contains filter.Name and whose
// specialty equals filter.Specialty, both ignoring case. Empty criteria match
// everything. Order is preserved.
func FilterDoctors(doctors []entity.Doctor, filter entity.DoctorFilter) []entity.Doctor {
	name := strings.ToLower(strings.TrimSpace(filter.Name))
	specialty := strings.TrimSpace(filter.Specialty)

	filtered := make([]entity.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if name != "" && !strings.Contains(strings.ToLower(d.Name), name) {
			continue
		}
		if specialty != "" && !strings.EqualFold(d.Specialty, specialty) {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// Specialties returns the distinct specialties in first-seen order.
func Specialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{}, len(doctors))
	specialties := make([]string, 0, len(doctors))
	for _, d := range doctors {
		if _, ok := seen[d.Specialty]; ok {
			continue
		}
		seen[d.Specialty] = struct{}{}
		specialties = append(specialties, d.Specialty)
	}
	return specialties
}
