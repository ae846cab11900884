package models

// RoleType defines the fixed set of EduFace roles.
type RoleType string

const (
	RoleAdmin    RoleType = "admin"
	RoleFaculty  RoleType = "faculty"
	RoleSecurity RoleType = "security"
)

// IsValid reports whether the role is one of the recognized roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleSecurity:
		return true
	}
	return false
}
