package converter

import (
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// The role name falls back to the seeded name when Role is not preloaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	roleName := user.Role.RoleName
	if roleName == "" {
		roleName = entity.RoleName(user.RoleID)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      roleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
