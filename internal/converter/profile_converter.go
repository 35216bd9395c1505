package converter

import (
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
)

// ProfileToResponse converts a Profile entity to ProfileResponse DTO.
// The email is display-only and comes from the session, not the profile row.
func ProfileToResponse(profile *entity.Profile, email string) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.ProfileResponse{
		ID:        profile.ID,
		Email:     email,
		FirstName: stringValue(profile.FirstName),
		LastName:  stringValue(profile.LastName),
		AvatarURL: profile.AvatarURL,
		UpdatedAt: profile.UpdatedAt,
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
