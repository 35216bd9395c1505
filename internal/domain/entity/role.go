package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants, seeded by migrations
const (
	RoleIDAdmin   = 1
	RoleIDPatient = 2
)

// RoleNames constants
const (
	RoleAdmin   = "admin"
	RolePatient = "patient"
)

// RoleName returns the role name for a seeded role id.
func RoleName(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDPatient:
		return RolePatient
	default:
		return ""
	}
}
