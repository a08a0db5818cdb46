package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/grievance-service/internal/domain"
)

// GrievanceAssignment pairs an unassigned grievance with its chosen
// assignee for the batch operation.
type GrievanceAssignment struct {
	GrievanceID string
	AssigneeID  string
}

// GrievanceRepository encapsulates grievance persistence.
type GrievanceRepository interface {
	Create(ctx context.Context, grievance *domain.Grievance) error
	GetByID(ctx context.Context, id string) (*domain.Grievance, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Grievance, error)
	ListByAssignee(ctx context.Context, employeeID string) ([]domain.Grievance, error)
	ListAll(ctx context.Context) ([]domain.Grievance, error)
	ListUnassigned(ctx context.Context) ([]domain.Grievance, error)
	AssignBatch(ctx context.Context, assignments []GrievanceAssignment) error
	Resolve(ctx context.Context, id, resolverID string, status domain.GrievanceStatus) (*domain.Grievance, error)
}

type grievanceRepository struct {
	pool *pgxpool.Pool
}

// NewGrievanceRepository instantiates repository.
func NewGrievanceRepository(pool *pgxpool.Pool) GrievanceRepository {
	return &grievanceRepository{pool: pool}
}

const grievanceColumns = `id, ticket_id, user_id, department_id, assigned_to, status, created_at, resolved_by, resolved_at`

func (r *grievanceRepository) Create(ctx context.Context, grievance *domain.Grievance) error {
	const query = `
        INSERT INTO grievances (ticket_id, user_id, department_id, status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		grievance.TicketID,
		grievance.UserID,
		grievance.DepartmentID,
		grievance.Status,
	).Scan(&grievance.ID, &grievance.CreatedAt)
}

func (r *grievanceRepository) GetByID(ctx context.Context, id string) (*domain.Grievance, error) {
	query := `SELECT ` + grievanceColumns + ` FROM grievances WHERE id=$1`
	var g domain.Grievance
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&g.ID,
		&g.TicketID,
		&g.UserID,
		&g.DepartmentID,
		&g.AssignedTo,
		&g.Status,
		&g.CreatedAt,
		&g.ResolvedBy,
		&g.ResolvedAt,
	); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *grievanceRepository) ListByUser(ctx context.Context, userID string) ([]domain.Grievance, error) {
	query := `SELECT ` + grievanceColumns + ` FROM grievances WHERE user_id=$1 ORDER BY created_at, id`
	return r.list(ctx, query, userID)
}

func (r *grievanceRepository) ListByAssignee(ctx context.Context, employeeID string) ([]domain.Grievance, error) {
	query := `SELECT ` + grievanceColumns + ` FROM grievances WHERE assigned_to=$1 ORDER BY created_at, id`
	return r.list(ctx, query, employeeID)
}

func (r *grievanceRepository) ListAll(ctx context.Context) ([]domain.Grievance, error) {
	query := `SELECT ` + grievanceColumns + ` FROM grievances ORDER BY created_at, id`
	return r.list(ctx, query)
}

// ListUnassigned returns the snapshot the assignment engine distributes,
// in stable enumeration order.
func (r *grievanceRepository) ListUnassigned(ctx context.Context) ([]domain.Grievance, error) {
	query := `SELECT ` + grievanceColumns + ` FROM grievances WHERE assigned_to IS NULL ORDER BY created_at, id`
	return r.list(ctx, query)
}

// AssignBatch writes all assignments in a single transaction. The
// assigned_to IS NULL guard means a grievance assigned by a concurrent
// call is left untouched rather than reassigned.
func (r *grievanceRepository) AssignBatch(ctx context.Context, assignments []GrievanceAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const query = `
        UPDATE grievances SET assigned_to=$1
        WHERE id=$2 AND assigned_to IS NULL`
	for _, a := range assignments {
		if _, err := tx.Exec(ctx, query, a.AssigneeID, a.GrievanceID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Resolve overwrites status, resolver and timestamp in one statement.
// Missing rows surface as pgx.ErrNoRows.
func (r *grievanceRepository) Resolve(ctx context.Context, id, resolverID string, status domain.GrievanceStatus) (*domain.Grievance, error) {
	query := `
        UPDATE grievances SET status=$1, resolved_by=$2, resolved_at=NOW()
        WHERE id=$3
        RETURNING ` + grievanceColumns
	var g domain.Grievance
	if err := r.pool.QueryRow(ctx, query, status, resolverID, id).Scan(
		&g.ID,
		&g.TicketID,
		&g.UserID,
		&g.DepartmentID,
		&g.AssignedTo,
		&g.Status,
		&g.CreatedAt,
		&g.ResolvedBy,
		&g.ResolvedAt,
	); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *grievanceRepository) list(ctx context.Context, query string, args ...any) ([]domain.Grievance, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGrievances(rows)
}

func scanGrievances(rows pgx.Rows) ([]domain.Grievance, error) {
	var result []domain.Grievance
	for rows.Next() {
		var g domain.Grievance
		if err := rows.Scan(
			&g.ID,
			&g.TicketID,
			&g.UserID,
			&g.DepartmentID,
			&g.AssignedTo,
			&g.Status,
			&g.CreatedAt,
			&g.ResolvedBy,
			&g.ResolvedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}
