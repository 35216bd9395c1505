package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor is a read-only directory entry. Rating is seed data with one decimal place.
type Doctor struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Specialty  string          `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Image      string          `gorm:"type:text;not null" json:"image"`
	Rating     decimal.Decimal `gorm:"type:numeric(2,1);not null;default:0" json:"rating"`
	Experience string          `gorm:"type:varchar(10);not null" json:"experience"`
	About      *string         `gorm:"type:text" json:"about,omitempty"`
	Education  *string         `gorm:"type:text" json:"education,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorFilter is the directory filter applied over the fetched doctor set.
type DoctorFilter struct {
	Name      string // case-insensitive substring of Doctor.Name
	Specialty string // case-insensitive exact Doctor.Specialty
}

// IsEmpty reports whether no filter is set.
func (f DoctorFilter) IsEmpty() bool {
	return f.Name == "" && f.Specialty == ""
}
