package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of AllRoles.
func (r Role) IsValid() bool {
	return AllRoles.Contains(r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// AllRoles lists every assignable role.
var AllRoles = Roles{RoleStudent, RoleTeacher, RoleAdmin}

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
