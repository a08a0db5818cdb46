package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/grievance-service/internal/auth"
	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/repository"
	apperrors "github.com/spec-kit/grievance-service/pkg/util"
)

// DirectoryService manages actors and departments.
type DirectoryService struct {
	actors      repository.ActorRepository
	departments repository.DepartmentRepository
	bcryptCost  int
}

// DirectoryDependencies bundles repositories.
type DirectoryDependencies struct {
	ActorRepo      repository.ActorRepository
	DepartmentRepo repository.DepartmentRepository
}

// NewDirectoryService builds the service.
func NewDirectoryService(deps DirectoryDependencies, bcryptCost int) *DirectoryService {
	return &DirectoryService{
		actors:      deps.ActorRepo,
		departments: deps.DepartmentRepo,
		bcryptCost:  bcryptCost,
	}
}

// ActorCreateInput describes actor creation payload.
type ActorCreateInput struct {
	Name         string
	Email        string
	Password     string
	Role         domain.Role
	DepartmentID *string
}

// CreateDepartment creates a department with a unique name.
func (s *DirectoryService) CreateDepartment(ctx context.Context, name string) (*domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}

	dept := &domain.Department{Name: name}
	if err := s.departments.Create(ctx, dept); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("department name already exists", map[string]any{"name": name})
		}
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// ListDepartments returns all departments in insertion order.
func (s *DirectoryService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return depts, nil
}

// CreateActor registers an actor. The raw password is hashed before
// persistence and never stored. When no department is given, the
// default department is resolved idempotently by unique name.
func (s *DirectoryService) CreateActor(ctx context.Context, input ActorCreateInput) (*domain.Actor, error) {
	if input.Email == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("email and password required", nil)
	}
	if !input.Role.Valid() {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": string(input.Role)})
	}

	departmentID := input.DepartmentID
	if departmentID == nil {
		dept, err := s.departments.GetOrCreateByName(ctx, domain.DefaultDepartmentName)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		departmentID = &dept.ID
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	actor := &domain.Actor{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		DepartmentID: departmentID,
	}
	if err := s.actors.Create(ctx, actor); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("email already registered", map[string]any{"email": input.Email})
		}
		return nil, apperrors.MapError(err)
	}
	return actor, nil
}

// GetActor fetches one actor; absence is NotFound, not a fatal error.
func (s *DirectoryService) GetActor(ctx context.Context, id string) (*domain.Actor, error) {
	actor, err := s.actors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("actor", map[string]any{"actor_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return actor, nil
}

// ListActors returns actors, optionally filtered by role.
func (s *DirectoryService) ListActors(ctx context.Context, roleFilter *domain.Role) ([]domain.Actor, error) {
	actors, err := s.actors.List(ctx, roleFilter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return actors, nil
}
