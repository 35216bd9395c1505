package dto

// Request DTOs

type EmergencyAlertRequest struct {
	Category string `json:"category" validate:"omitempty,oneof=medical mental-health safety other"`
}

// Response DTOs

type EmergencyCategoryResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type EmergencyAlertResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}
