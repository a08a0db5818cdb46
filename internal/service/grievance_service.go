package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/events"
	"github.com/spec-kit/grievance-service/internal/repository"
	apperrors "github.com/spec-kit/grievance-service/pkg/util"
)

// GrievanceService coordinates the grievance lifecycle: creation,
// round-robin assignment, resolution and visibility-scoped retrieval.
type GrievanceService struct {
	grievances  repository.GrievanceRepository
	actors      repository.ActorRepository
	departments repository.DepartmentRepository
	dispatcher  events.Dispatcher
}

// GrievanceDependencies bundles repositories.
type GrievanceDependencies struct {
	GrievanceRepo  repository.GrievanceRepository
	ActorRepo      repository.ActorRepository
	DepartmentRepo repository.DepartmentRepository
	Dispatcher     events.Dispatcher
}

// NewGrievanceService creates the service.
func NewGrievanceService(deps GrievanceDependencies) *GrievanceService {
	return &GrievanceService{
		grievances:  deps.GrievanceRepo,
		actors:      deps.ActorRepo,
		departments: deps.DepartmentRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// Create files a grievance for the creator against a department. The
// ticket id is a fresh random UUID; the database unique constraint
// backs the never-reused guarantee. The creator never picks the
// assignee: grievances start pending and unassigned.
func (s *GrievanceService) Create(ctx context.Context, creator *domain.Actor, departmentID string) (*domain.Grievance, error) {
	if departmentID == "" {
		return nil, apperrors.NewValidationError("department_id required", nil)
	}
	if _, err := s.departments.GetByID(ctx, departmentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", map[string]any{"department_id": departmentID})
		}
		return nil, apperrors.MapError(err)
	}

	grievance := &domain.Grievance{
		TicketID:     uuid.NewString(),
		UserID:       creator.ID,
		DepartmentID: departmentID,
		Status:       domain.GrievanceStatusPending,
	}
	if err := s.grievances.Create(ctx, grievance); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, creator, events.Event{
		Type:        events.EventGrievanceCreated,
		GrievanceID: grievance.ID,
		Payload: events.GrievanceCreatedPayload{
			TicketID:     grievance.TicketID,
			DepartmentID: grievance.DepartmentID,
		},
	})
	return grievance, nil
}

// AssignPending distributes every unassigned grievance across the
// employee set round-robin. Both sets are snapshotted up front; the
// assignment is computed purely from the snapshots and committed as one
// batch. An empty employee set is a successful no-op. Returns the
// number of grievances assigned.
func (s *GrievanceService) AssignPending(ctx context.Context, actor *domain.Actor) (int, error) {
	pending, err := s.grievances.ListUnassigned(ctx)
	if err != nil {
		return 0, apperrors.MapError(err)
	}
	role := domain.RoleEmployee
	employees, err := s.actors.List(ctx, &role)
	if err != nil {
		return 0, apperrors.MapError(err)
	}
	if len(employees) == 0 || len(pending) == 0 {
		return 0, nil
	}

	assignments := roundRobin(pending, employees)
	if err := s.grievances.AssignBatch(ctx, assignments); err != nil {
		return 0, apperrors.MapError(err)
	}

	s.publishEvent(ctx, actor, events.Event{
		Type: events.EventGrievanceAssigned,
		Payload: events.GrievanceAssignedPayload{
			AssignedCount: len(assignments),
			EmployeeCount: len(employees),
		},
	})
	return len(assignments), nil
}

// roundRobin pairs grievance i with employee i mod E, keyed purely by
// enumeration order. It does not rebalance existing assignments or
// consider open-ticket counts.
func roundRobin(pending []domain.Grievance, employees []domain.Actor) []repository.GrievanceAssignment {
	assignments := make([]repository.GrievanceAssignment, 0, len(pending))
	for i, g := range pending {
		assignments = append(assignments, repository.GrievanceAssignment{
			GrievanceID: g.ID,
			AssigneeID:  employees[i%len(employees)].ID,
		})
	}
	return assignments
}

// ListForActor applies the visibility policy: users see their own
// grievances, employees see grievances assigned to them, admins and
// super admins see everything.
func (s *GrievanceService) ListForActor(ctx context.Context, actor *domain.Actor) ([]domain.Grievance, error) {
	var (
		result []domain.Grievance
		err    error
	)
	switch actor.Role {
	case domain.RoleUser:
		result, err = s.grievances.ListByUser(ctx, actor.ID)
	case domain.RoleEmployee:
		result, err = s.grievances.ListByAssignee(ctx, actor.ID)
	case domain.RoleAdmin, domain.RoleSuperAdmin:
		result, err = s.grievances.ListAll(ctx)
	default:
		return nil, apperrors.NewForbidden("role cannot list grievances")
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// Resolve marks a grievance solved or not solved, recording resolver
// and timestamp together. A later call overwrites the previous
// resolution; there is no terminal-state guard. The resolver id is
// caller supplied and not checked against the actor table.
func (s *GrievanceService) Resolve(ctx context.Context, actor *domain.Actor, grievanceID, resolverID string, solved bool) (*domain.Grievance, error) {
	if resolverID == "" {
		resolverID = actor.ID
	}
	status := domain.GrievanceStatusNotSolved
	if solved {
		status = domain.GrievanceStatusSolved
	}

	grievance, err := s.grievances.Resolve(ctx, grievanceID, resolverID, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("grievance", map[string]any{"grievance_id": grievanceID})
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, actor, events.Event{
		Type:        events.EventGrievanceResolved,
		GrievanceID: grievance.ID,
		Payload: events.GrievanceResolvedPayload{
			Status:     grievance.Status,
			ResolvedBy: resolverID,
		},
	})
	return grievance, nil
}

func (s *GrievanceService) publishEvent(ctx context.Context, actor *domain.Actor, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	if actor != nil {
		event.Actor = events.Actor{ID: actor.ID, Role: actor.Role}
	}
	_ = s.dispatcher.Publish(ctx, event)
}
