package dto

import (
	"github.com/google/uuid"
)

// Response DTOs

type DoctorResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Specialty  string    `json:"specialty"`
	Image      string    `json:"image"`
	Rating     float64   `json:"rating"`
	Experience string    `json:"experience"`
	About      *string   `json:"about,omitempty"`
	Education  *string   `json:"education,omitempty"`
	DetailURL  string    `json:"detail_url"`
}

type DoctorFilterResponse struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// DoctorDirectoryResponse is the filtered directory. Specialties are taken
// from the unfiltered set so the filter options never shrink.
type DoctorDirectoryResponse struct {
	Doctors      []DoctorResponse     `json:"doctors"`
	Specialties  []string             `json:"specialties"`
	Filter       DoctorFilterResponse `json:"filter"`
	Total        int                  `json:"total"`
	Empty        bool                 `json:"empty"`
	ClearFilters string               `json:"clear_filters,omitempty"`
}

type ChannelOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type DateOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type BookingOptionsResponse struct {
	Channels       []ChannelOption `json:"channels"`
	DefaultChannel string          `json:"default_channel"`
	Dates          []DateOption    `json:"dates"`
	Slots          []string        `json:"slots"`
}

type DoctorDetailResponse struct {
	Doctor  DoctorResponse         `json:"doctor"`
	Booking BookingOptionsResponse `json:"booking"`
}
