package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/repository"
)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}

type fakeActorRepo struct {
	mu     sync.RWMutex
	actors []domain.Actor
}

func newFakeActorRepo() *fakeActorRepo {
	return &fakeActorRepo{}
}

func (r *fakeActorRepo) Create(_ context.Context, actor *domain.Actor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.actors {
		if a.Email == actor.Email {
			return uniqueViolation()
		}
	}
	actor.ID = uuid.NewString()
	actor.CreatedAt = time.Now()
	actor.UpdatedAt = actor.CreatedAt
	r.actors = append(r.actors, *actor)
	return nil
}

func (r *fakeActorRepo) Update(_ context.Context, actor *domain.Actor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.actors {
		if r.actors[i].ID == actor.ID {
			actor.UpdatedAt = time.Now()
			r.actors[i] = *actor
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeActorRepo) GetByID(_ context.Context, id string) (*domain.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.actors {
		if r.actors[i].ID == id {
			a := r.actors[i]
			return &a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeActorRepo) GetByEmail(_ context.Context, email string) (*domain.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.actors {
		if r.actors[i].Email == email {
			a := r.actors[i]
			return &a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeActorRepo) List(_ context.Context, roleFilter *domain.Role) ([]domain.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Actor
	for _, a := range r.actors {
		if roleFilter == nil || a.Role == *roleFilter {
			result = append(result, a)
		}
	}
	return result, nil
}

type fakeDepartmentRepo struct {
	mu          sync.RWMutex
	departments []domain.Department
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{}
}

func (r *fakeDepartmentRepo) Create(_ context.Context, dept *domain.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.departments {
		if d.Name == dept.Name {
			return uniqueViolation()
		}
	}
	dept.ID = uuid.NewString()
	dept.CreatedAt = time.Now()
	r.departments = append(r.departments, *dept)
	return nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id string) (*domain.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.departments {
		if r.departments[i].ID == id {
			d := r.departments[i]
			return &d, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeDepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Department{}, r.departments...), nil
}

func (r *fakeDepartmentRepo) GetOrCreateByName(_ context.Context, name string) (*domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.departments {
		if r.departments[i].Name == name {
			d := r.departments[i]
			return &d, nil
		}
	}
	dept := domain.Department{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	r.departments = append(r.departments, dept)
	return &dept, nil
}

type fakeGrievanceRepo struct {
	mu         sync.RWMutex
	grievances []domain.Grievance
}

func newFakeGrievanceRepo() *fakeGrievanceRepo {
	return &fakeGrievanceRepo{}
}

func (r *fakeGrievanceRepo) Create(_ context.Context, grievance *domain.Grievance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.grievances {
		if g.TicketID == grievance.TicketID {
			return uniqueViolation()
		}
	}
	grievance.ID = uuid.NewString()
	grievance.CreatedAt = time.Now()
	r.grievances = append(r.grievances, *grievance)
	return nil
}

func (r *fakeGrievanceRepo) GetByID(_ context.Context, id string) (*domain.Grievance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.grievances {
		if r.grievances[i].ID == id {
			g := r.grievances[i]
			return &g, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeGrievanceRepo) ListByUser(_ context.Context, userID string) ([]domain.Grievance, error) {
	return r.filter(func(g domain.Grievance) bool { return g.UserID == userID }), nil
}

func (r *fakeGrievanceRepo) ListByAssignee(_ context.Context, employeeID string) ([]domain.Grievance, error) {
	return r.filter(func(g domain.Grievance) bool {
		return g.AssignedTo != nil && *g.AssignedTo == employeeID
	}), nil
}

func (r *fakeGrievanceRepo) ListAll(_ context.Context) ([]domain.Grievance, error) {
	return r.filter(func(domain.Grievance) bool { return true }), nil
}

func (r *fakeGrievanceRepo) ListUnassigned(_ context.Context) ([]domain.Grievance, error) {
	return r.filter(func(g domain.Grievance) bool { return g.AssignedTo == nil }), nil
}

func (r *fakeGrievanceRepo) AssignBatch(_ context.Context, assignments []repository.GrievanceAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range assignments {
		for i := range r.grievances {
			if r.grievances[i].ID == a.GrievanceID && r.grievances[i].AssignedTo == nil {
				assignee := a.AssigneeID
				r.grievances[i].AssignedTo = &assignee
			}
		}
	}
	return nil
}

func (r *fakeGrievanceRepo) Resolve(_ context.Context, id, resolverID string, status domain.GrievanceStatus) (*domain.Grievance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.grievances {
		if r.grievances[i].ID == id {
			now := time.Now()
			resolver := resolverID
			r.grievances[i].Status = status
			r.grievances[i].ResolvedBy = &resolver
			r.grievances[i].ResolvedAt = &now
			g := r.grievances[i]
			return &g, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeGrievanceRepo) filter(keep func(domain.Grievance) bool) []domain.Grievance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Grievance
	for _, g := range r.grievances {
		if keep(g) {
			result = append(result, g)
		}
	}
	return result
}

type fakeCommentRepo struct {
	mu       sync.RWMutex
	comments []domain.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now()
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) ListByGrievance(_ context.Context, grievanceID string) ([]domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Comment
	for _, c := range r.comments {
		if c.GrievanceID == grievanceID {
			result = append(result, c)
		}
	}
	return result, nil
}

type fakePasswordResetRepo struct {
	mu     sync.RWMutex
	tokens []domain.PasswordResetToken
}

func newFakePasswordResetRepo() *fakePasswordResetRepo {
	return &fakePasswordResetRepo{}
}

func (r *fakePasswordResetRepo) Create(_ context.Context, token *domain.PasswordResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	token.ID = uuid.NewString()
	token.CreatedAt = time.Now()
	r.tokens = append(r.tokens, *token)
	return nil
}

func (r *fakePasswordResetRepo) GetByToken(_ context.Context, tokenStr string) (*domain.PasswordResetToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.tokens {
		if r.tokens[i].Token == tokenStr {
			t := r.tokens[i]
			return &t, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakePasswordResetRepo) MarkUsed(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tokens {
		if r.tokens[i].ID == id {
			now := time.Now()
			r.tokens[i].UsedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakePasswordResetRepo) backdate(tokenStr string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tokens {
		if r.tokens[i].Token == tokenStr {
			r.tokens[i].ExpiresAt = expiresAt
		}
	}
}
