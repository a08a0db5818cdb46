package auth

import (
	"testing"

	"github.com/spec-kit/grievance-service/internal/domain"
)

func TestCapabilityTable(t *testing.T) {
	cases := []struct {
		op      Operation
		role    domain.Role
		allowed bool
	}{
		{OpCreateGrievance, domain.RoleUser, true},
		{OpCreateGrievance, domain.RoleEmployee, false},
		{OpCreateGrievance, domain.RoleAdmin, false},
		{OpCreateGrievance, domain.RoleSuperAdmin, false},

		{OpAssignGrievances, domain.RoleAdmin, true},
		{OpAssignGrievances, domain.RoleSuperAdmin, true},
		{OpAssignGrievances, domain.RoleEmployee, false},
		{OpAssignGrievances, domain.RoleUser, false},

		{OpResolveGrievance, domain.RoleEmployee, true},
		{OpResolveGrievance, domain.RoleAdmin, true},
		{OpResolveGrievance, domain.RoleSuperAdmin, true},
		{OpResolveGrievance, domain.RoleUser, false},

		{OpCreateActor, domain.RoleEmployee, true},
		{OpCreateActor, domain.RoleAdmin, true},
		{OpCreateActor, domain.RoleSuperAdmin, true},
		{OpCreateActor, domain.RoleUser, false},

		{OpCreateDepartment, domain.RoleAdmin, true},
		{OpCreateDepartment, domain.RoleSuperAdmin, true},
		{OpCreateDepartment, domain.RoleEmployee, false},
		{OpCreateDepartment, domain.RoleUser, false},

		{OpListDepartments, domain.RoleEmployee, true},
		{OpListDepartments, domain.RoleUser, false},

		{OpListGrievances, domain.RoleUser, true},
		{OpCreateComment, domain.RoleUser, true},
		{OpListComments, domain.RoleEmployee, true},
		{OpGetActor, domain.RoleUser, true},
	}

	for _, tc := range cases {
		if got := Allowed(tc.op, tc.role); got != tc.allowed {
			t.Errorf("%s / %s: got %v, want %v", tc.op, tc.role, got, tc.allowed)
		}
	}
}

func TestUnknownOperationDeniesAll(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleUser, domain.RoleEmployee, domain.RoleAdmin, domain.RoleSuperAdmin} {
		if Allowed(Operation("nope"), role) {
			t.Fatalf("unknown operation must deny %s", role)
		}
	}
}

func TestEveryOperationHasAllowedRoles(t *testing.T) {
	ops := []Operation{
		OpCreateActor, OpListActors, OpGetActor,
		OpCreateDepartment, OpListDepartments,
		OpCreateGrievance, OpListGrievances, OpAssignGrievances, OpResolveGrievance,
		OpCreateComment, OpListComments,
	}
	for _, op := range ops {
		roles, ok := allowedRoles[op]
		if !ok || len(roles) == 0 {
			t.Errorf("%s has no allowed roles", op)
		}
	}
}
