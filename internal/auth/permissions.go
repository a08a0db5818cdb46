package auth

import "github.com/spec-kit/grievance-service/internal/domain"

// Operation identifies a role-gated call on the request surface.
type Operation string

const (
	OpCreateActor      Operation = "actors.create"
	OpListActors       Operation = "actors.list"
	OpGetActor         Operation = "actors.get"
	OpCreateDepartment Operation = "departments.create"
	OpListDepartments  Operation = "departments.list"
	OpCreateGrievance  Operation = "grievances.create"
	OpListGrievances   Operation = "grievances.list"
	OpAssignGrievances Operation = "grievances.assign"
	OpResolveGrievance Operation = "grievances.resolve"
	OpCreateComment    Operation = "comments.create"
	OpListComments     Operation = "comments.list"
)

// allowedRoles is the capability table: each operation enumerates its own
// allowed set. Roles do not inherit from each other, so an operation that
// an employee may call is not automatically open to an admin.
var allowedRoles = map[Operation][]domain.Role{
	OpCreateActor:      {domain.RoleAdmin, domain.RoleEmployee, domain.RoleSuperAdmin},
	OpListActors:       {domain.RoleUser, domain.RoleEmployee, domain.RoleAdmin, domain.RoleSuperAdmin},
	OpGetActor:         {domain.RoleUser, domain.RoleEmployee, domain.RoleAdmin, domain.RoleSuperAdmin},
	OpCreateDepartment: {domain.RoleAdmin, domain.RoleSuperAdmin},
	OpListDepartments:  {domain.RoleAdmin, domain.RoleEmployee, domain.RoleSuperAdmin},
	OpCreateGrievance:  {domain.RoleUser},
	OpListGrievances:   {domain.RoleUser, domain.RoleEmployee, domain.RoleAdmin, domain.RoleSuperAdmin},
	OpAssignGrievances: {domain.RoleAdmin, domain.RoleSuperAdmin},
	OpResolveGrievance: {domain.RoleEmployee, domain.RoleAdmin, domain.RoleSuperAdmin},
	OpCreateComment:    {domain.RoleUser, domain.RoleEmployee, domain.RoleAdmin, domain.RoleSuperAdmin},
	OpListComments:     {domain.RoleUser, domain.RoleEmployee, domain.RoleAdmin, domain.RoleSuperAdmin},
}

// Allowed reports whether role may invoke op.
func Allowed(op Operation, role domain.Role) bool {
	for _, r := range allowedRoles[op] {
		if r == role {
			return true
		}
	}
	return false
}
