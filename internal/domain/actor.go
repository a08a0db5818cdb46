package domain

import "time"

// Role enumerates actor roles. The set is flat: no role contains another,
// and every operation lists exactly which roles may invoke it.
type Role string

const (
	RoleUser       Role = "user"
	RoleEmployee   Role = "employee"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleEmployee, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Actor is any authenticated entity: end-user, employee or administrator.
// Role is fixed at creation; there is no promotion operation.
type Actor struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	DepartmentID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
