package repository

import (
	"errors"

	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
	domainRepo "github.com/janhvi13092005/doc-talk-connect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository struct{}

func NewProfileRepository() domainRepo.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *entity.Profile) error {
	return db.Create(profile).Error
}

func (r *profileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateNames writes first_name and last_name and nothing else.
func (r *profileRepository) UpdateNames(db *gorm.DB, id uuid.UUID, names entity.ProfileNames) (int64, error) {
	result := db.Model(&entity.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"first_name": names.FirstName,
			"last_name":  names.LastName,
		})
	return result.RowsAffected, result.Error
}
