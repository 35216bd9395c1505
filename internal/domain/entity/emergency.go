package entity

// EmergencyCategory classifies an emergency alert.
type EmergencyCategory string

const (
	EmergencyMedical      EmergencyCategory = "medical"
	EmergencyMentalHealth EmergencyCategory = "mental-health"
	EmergencySafety       EmergencyCategory = "safety"
	EmergencyOther        EmergencyCategory = "other"
)

// EmergencyCategories lists the categories in display order.
var EmergencyCategories = []EmergencyCategory{
	EmergencyMedical,
	EmergencyMentalHealth,
	EmergencySafety,
	EmergencyOther,
}

// Label returns the human readable category name.
func (c EmergencyCategory) Label() string {
	switch c {
	case EmergencyMedical:
		return "Medical"
	case EmergencyMentalHealth:
		return "Mental Health"
	case EmergencySafety:
		return "Safety Concern"
	case EmergencyOther:
		return "Other"
	default:
		return ""
	}
}

// IsValid reports whether c is a known category.
func (c EmergencyCategory) IsValid() bool {
	return c.Label() != ""
}
