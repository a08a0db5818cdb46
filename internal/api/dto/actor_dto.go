package dto

import (
	"time"

	"github.com/spec-kit/grievance-service/internal/domain"
)

// SignupRequest payload for public registration.
type SignupRequest struct {
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Password     string      `json:"password"`
	Role         domain.Role `json:"role"`
	DepartmentID *string     `json:"department_id,omitempty"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PasswordResetRequest starts the reset flow.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest consumes a reset token.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ActorFullResponse is the elevated projection. The password hash is
// never serialized in any projection.
type ActorFullResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name,omitempty"`
	Email        string      `json:"email"`
	Role         domain.Role `json:"role"`
	DepartmentID *string     `json:"department_id,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// ActorLimitedResponse omits department linkage for non-elevated viewers.
type ActorLimitedResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name,omitempty"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// FullActor maps an actor to the full projection.
func FullActor(actor *domain.Actor) ActorFullResponse {
	return ActorFullResponse{
		ID:           actor.ID,
		Name:         actor.Name,
		Email:        actor.Email,
		Role:         actor.Role,
		DepartmentID: actor.DepartmentID,
		CreatedAt:    actor.CreatedAt,
	}
}

// LimitedActor maps an actor to the limited projection.
func LimitedActor(actor *domain.Actor) ActorLimitedResponse {
	return ActorLimitedResponse{
		ID:    actor.ID,
		Name:  actor.Name,
		Email: actor.Email,
		Role:  actor.Role,
	}
}

// ProjectActor shapes the visible fields of target according to the
// viewer's role: elevated roles and the actor itself see the full
// record, a plain user sees the limited one.
func ProjectActor(viewer, target *domain.Actor) any {
	if viewer.ID == target.ID {
		return FullActor(target)
	}
	switch viewer.Role {
	case domain.RoleEmployee, domain.RoleAdmin, domain.RoleSuperAdmin:
		return FullActor(target)
	default:
		return LimitedActor(target)
	}
}
