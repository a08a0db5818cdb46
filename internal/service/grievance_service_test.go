package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/grievance-service/internal/domain"
	apperrors "github.com/spec-kit/grievance-service/pkg/util"
)

type grievanceFixture struct {
	service    *GrievanceService
	grievances *fakeGrievanceRepo
	actors     *fakeActorRepo
	department *domain.Department
}

func newGrievanceFixture(t *testing.T) *grievanceFixture {
	t.Helper()
	grievances := newFakeGrievanceRepo()
	actors := newFakeActorRepo()
	departments := newFakeDepartmentRepo()

	dept := &domain.Department{Name: "Facilities"}
	if err := departments.Create(context.Background(), dept); err != nil {
		t.Fatalf("seed department: %v", err)
	}

	return &grievanceFixture{
		service: NewGrievanceService(GrievanceDependencies{
			GrievanceRepo:  grievances,
			ActorRepo:      actors,
			DepartmentRepo: departments,
		}),
		grievances: grievances,
		actors:     actors,
		department: dept,
	}
}

func (f *grievanceFixture) addActor(t *testing.T, role domain.Role, email string) *domain.Actor {
	t.Helper()
	actor := &domain.Actor{Name: string(role), Email: email, PasswordHash: "x", Role: role}
	if err := f.actors.Create(context.Background(), actor); err != nil {
		t.Fatalf("seed actor: %v", err)
	}
	return actor
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return de.Code
}

func TestCreateIssuesDistinctTickets(t *testing.T) {
	f := newGrievanceFixture(t)
	user := f.addActor(t, domain.RoleUser, "user@example.com")

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		g, err := f.service.Create(context.Background(), user, f.department.ID)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if g.Status != domain.GrievanceStatusPending {
			t.Fatalf("expected pending, got %s", g.Status)
		}
		if g.AssignedTo != nil {
			t.Fatalf("new grievance must be unassigned")
		}
		if seen[g.TicketID] {
			t.Fatalf("duplicate ticket id %s", g.TicketID)
		}
		seen[g.TicketID] = true
	}
}

func TestCreateUnknownDepartment(t *testing.T) {
	f := newGrievanceFixture(t)
	user := f.addActor(t, domain.RoleUser, "user@example.com")

	_, err := f.service.Create(context.Background(), user, "missing")
	if err == nil {
		t.Fatal("expected error for unknown department")
	}
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", code)
	}
}

func TestAssignPendingRoundRobin(t *testing.T) {
	f := newGrievanceFixture(t)
	user := f.addActor(t, domain.RoleUser, "user@example.com")
	admin := f.addActor(t, domain.RoleAdmin, "admin@example.com")
	empA := f.addActor(t, domain.RoleEmployee, "a@example.com")
	empB := f.addActor(t, domain.RoleEmployee, "b@example.com")

	var created []string
	for i := 0; i < 5; i++ {
		g, err := f.service.Create(context.Background(), user, f.department.ID)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		created = append(created, g.ID)
	}

	assigned, err := f.service.AssignPending(context.Background(), admin)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if assigned != 5 {
		t.Fatalf("expected 5 assigned, got %d", assigned)
	}

	want := []string{empA.ID, empB.ID, empA.ID, empB.ID, empA.ID}
	for i, id := range created {
		g, err := f.grievances.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if g.AssignedTo == nil || *g.AssignedTo != want[i] {
			t.Fatalf("grievance %d: wrong assignee", i)
		}
	}
}

func TestAssignPendingNoEmployees(t *testing.T) {
	f := newGrievanceFixture(t)
	user := f.addActor(t, domain.RoleUser, "user@example.com")
	admin := f.addActor(t, domain.RoleAdmin, "admin@example.com")

	if _, err := f.service.Create(context.Background(), user, f.department.ID); err != nil {
		t.Fatalf("create: %v", err)
	}

	assigned, err := f.service.AssignPending(context.Background(), admin)
	if err != nil {
		t.Fatalf("assign with no employees must succeed, got %v", err)
	}
	if assigned != 0 {
		t.Fatalf("expected 0 assigned, got %d", assigned)
	}

	pending, _ := f.grievances.ListUnassigned(context.Background())
	if len(pending) != 1 {
		t.Fatalf("grievance should remain unassigned")
	}
}

func TestAssignPendingLeavesExistingAssignments(t *testing.T) {
	f := newGrievanceFixture(t)
	user := f.addActor(t, domain.RoleUser, "user@example.com")
	admin := f.addActor(t, domain.RoleAdmin, "admin@example.com")
	empA := f.addActor(t, domain.RoleEmployee, "a@example.com")

	first, err := f.service.Create(context.Background(), user, f.department.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.service.AssignPending(context.Background(), admin); err != nil {
		t.Fatalf("assign: %v", err)
	}

	f.addActor(t, domain.RoleEmployee, "b@example.com")
	second, err := f.service.Create(context.Background(), user, f.department.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	assigned, err := f.service.AssignPending(context.Background(), admin)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if assigned != 1 {
		t.Fatalf("expected 1 newly assigned, got %d", assigned)
	}

	g, _ := f.grievances.GetByID(context.Background(), first.ID)
	if g.AssignedTo == nil || *g.AssignedTo != empA.ID {
		t.Fatal("existing assignment must not change")
	}
	g, _ = f.grievances.GetByID(context.Background(), second.ID)
	if g.AssignedTo == nil {
		t.Fatal("new grievance should be assigned")
	}
}

func TestResolveRecordsResolverAndTimestamp(t *testing.T) {
	f := newGrievanceFixture(t)
	user := f.addActor(t, domain.RoleUser, "user@example.com")
	employee := f.addActor(t, domain.RoleEmployee, "emp@example.com")

	g, err := f.service.Create(context.Background(), user, f.department.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	before := time.Now()
	resolved, err := f.service.Resolve(context.Background(), employee, g.ID, "", true)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Status != domain.GrievanceStatusSolved {
		t.Fatalf("expected solved, got %s", resolved.Status)
	}
	if resolved.ResolvedBy == nil || *resolved.ResolvedBy != employee.ID {
		t.Fatal("resolver should default to caller")
	}
	if resolved.ResolvedAt == nil || resolved.ResolvedAt.Before(before) {
		t.Fatal("resolved_at should be stamped at resolve time")
	}

	reresolved, err := f.service.Resolve(context.Background(), employee, g.ID, "", false)
	if err != nil {
		t.Fatalf("re-resolve: %v", err)
	}
	if reresolved.Status != domain.GrievanceStatusNotSolved {
		t.Fatalf("re-resolve should overwrite status, got %s", reresolved.Status)
	}
}

func TestResolveMissingGrievance(t *testing.T) {
	f := newGrievanceFixture(t)
	employee := f.addActor(t, domain.RoleEmployee, "emp@example.com")

	_, err := f.service.Resolve(context.Background(), employee, "missing", "", true)
	if err == nil {
		t.Fatal("expected error for missing grievance")
	}
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", code)
	}
}

func TestListForActorVisibility(t *testing.T) {
	f := newGrievanceFixture(t)
	alice := f.addActor(t, domain.RoleUser, "alice@example.com")
	bob := f.addActor(t, domain.RoleUser, "bob@example.com")
	admin := f.addActor(t, domain.RoleAdmin, "admin@example.com")
	employee := f.addActor(t, domain.RoleEmployee, "emp@example.com")

	for i := 0; i < 2; i++ {
		if _, err := f.service.Create(context.Background(), alice, f.department.ID); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := f.service.Create(context.Background(), bob, f.department.ID); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.service.AssignPending(context.Background(), admin); err != nil {
		t.Fatalf("assign: %v", err)
	}

	own, err := f.service.ListForActor(context.Background(), alice)
	if err != nil {
		t.Fatalf("list as user: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("user should see 2 own grievances, got %d", len(own))
	}
	for _, g := range own {
		if g.UserID != alice.ID {
			t.Fatal("user listing leaked another user's grievance")
		}
	}

	mine, err := f.service.ListForActor(context.Background(), employee)
	if err != nil {
		t.Fatalf("list as employee: %v", err)
	}
	for _, g := range mine {
		if g.AssignedTo == nil || *g.AssignedTo != employee.ID {
			t.Fatal("employee listing leaked an unassigned grievance")
		}
	}

	all, err := f.service.ListForActor(context.Background(), admin)
	if err != nil {
		t.Fatalf("list as admin: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("admin should see all 3 grievances, got %d", len(all))
	}
}
