package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/grievance-service/internal/domain"
)

// ActorRepository defines persistence access for actors.
type ActorRepository interface {
	Create(ctx context.Context, actor *domain.Actor) error
	Update(ctx context.Context, actor *domain.Actor) error
	GetByID(ctx context.Context, id string) (*domain.Actor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Actor, error)
	List(ctx context.Context, roleFilter *domain.Role) ([]domain.Actor, error)
}

type actorRepository struct {
	pool *pgxpool.Pool
}

// NewActorRepository returns a Postgres-backed implementation.
func NewActorRepository(pool *pgxpool.Pool) ActorRepository {
	return &actorRepository{pool: pool}
}

func (r *actorRepository) Create(ctx context.Context, actor *domain.Actor) error {
	const query = `
        INSERT INTO actors (name, email, password_hash, role, department_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		actor.Name,
		actor.Email,
		actor.PasswordHash,
		actor.Role,
		actor.DepartmentID,
	).Scan(&actor.ID, &actor.CreatedAt, &actor.UpdatedAt)
}

func (r *actorRepository) Update(ctx context.Context, actor *domain.Actor) error {
	const query = `
        UPDATE actors SET name=$1, email=$2, password_hash=$3, department_id=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		actor.Name,
		actor.Email,
		actor.PasswordHash,
		actor.DepartmentID,
		actor.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *actorRepository) GetByID(ctx context.Context, id string) (*domain.Actor, error) {
	const query = `
        SELECT id, name, email, password_hash, role, department_id, created_at, updated_at
        FROM actors WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *actorRepository) GetByEmail(ctx context.Context, email string) (*domain.Actor, error) {
	const query = `
        SELECT id, name, email, password_hash, role, department_id, created_at, updated_at
        FROM actors WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *actorRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Actor, error) {
	var actor domain.Actor
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&actor.ID,
		&actor.Name,
		&actor.Email,
		&actor.PasswordHash,
		&actor.Role,
		&actor.DepartmentID,
		&actor.CreatedAt,
		&actor.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &actor, nil
}

// List returns actors ordered by creation, so callers that snapshot the
// employee set see a stable enumeration.
func (r *actorRepository) List(ctx context.Context, roleFilter *domain.Role) ([]domain.Actor, error) {
	const base = `
        SELECT id, name, email, password_hash, role, department_id, created_at, updated_at
        FROM actors`

	var (
		rows pgx.Rows
		err  error
	)
	if roleFilter != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE role=$1 ORDER BY created_at, id`, *roleFilter)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY created_at, id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Actor
	for rows.Next() {
		var actor domain.Actor
		if err := rows.Scan(
			&actor.ID,
			&actor.Name,
			&actor.Email,
			&actor.PasswordHash,
			&actor.Role,
			&actor.DepartmentID,
			&actor.CreatedAt,
			&actor.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, actor)
	}
	return result, rows.Err()
}
