package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spec-kit/grievance-service/internal/domain"
)

func sampleActor(id string, role domain.Role) *domain.Actor {
	dept := "dept-1"
	return &domain.Actor{
		ID:           id,
		Name:         "Sample",
		Email:        id + "@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         role,
		DepartmentID: &dept,
	}
}

func TestProjectActorElevatedViewersSeeFullRecord(t *testing.T) {
	target := sampleActor("target", domain.RoleUser)

	for _, role := range []domain.Role{domain.RoleEmployee, domain.RoleAdmin, domain.RoleSuperAdmin} {
		viewer := sampleActor("viewer", role)
		if _, ok := ProjectActor(viewer, target).(ActorFullResponse); !ok {
			t.Errorf("%s viewer should get the full projection", role)
		}
	}
}

func TestProjectActorUserSeesLimitedRecord(t *testing.T) {
	viewer := sampleActor("viewer", domain.RoleUser)
	target := sampleActor("target", domain.RoleUser)

	if _, ok := ProjectActor(viewer, target).(ActorLimitedResponse); !ok {
		t.Fatal("plain user viewing another actor should get the limited projection")
	}
}

func TestProjectActorSelfSeesFullRecord(t *testing.T) {
	self := sampleActor("self", domain.RoleUser)

	if _, ok := ProjectActor(self, self).(ActorFullResponse); !ok {
		t.Fatal("an actor viewing itself should get the full projection")
	}
}

func TestProjectionsNeverSerializeHash(t *testing.T) {
	actor := sampleActor("a", domain.RoleAdmin)

	for _, projection := range []any{FullActor(actor), LimitedActor(actor)} {
		raw, err := json.Marshal(projection)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if strings.Contains(string(raw), actor.PasswordHash) {
			t.Fatal("projection serialized the password hash")
		}
	}
}
