package dto

import (
	"time"

	"github.com/spec-kit/grievance-service/internal/domain"
)

// GrievanceCreateRequest payload for filing a grievance.
type GrievanceCreateRequest struct {
	DepartmentID string `json:"department_id"`
}

// GrievanceResolveRequest payload for resolving a grievance. Solved
// defaults to true when omitted.
type GrievanceResolveRequest struct {
	ResolverID string `json:"resolver_id"`
	Solved     *bool  `json:"solved,omitempty"`
}

// GrievanceResponse serialized grievance.
type GrievanceResponse struct {
	ID           string                 `json:"id"`
	TicketID     string                 `json:"ticket_id"`
	UserID       string                 `json:"user_id"`
	DepartmentID string                 `json:"department_id"`
	AssignedTo   *string                `json:"assigned_to,omitempty"`
	Status       domain.GrievanceStatus `json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
	ResolvedBy   *string                `json:"resolved_by,omitempty"`
	ResolvedAt   *time.Time             `json:"resolved_at,omitempty"`
}

// NewGrievanceResponse maps a grievance.
func NewGrievanceResponse(g *domain.Grievance) GrievanceResponse {
	return GrievanceResponse{
		ID:           g.ID,
		TicketID:     g.TicketID,
		UserID:       g.UserID,
		DepartmentID: g.DepartmentID,
		AssignedTo:   g.AssignedTo,
		Status:       g.Status,
		CreatedAt:    g.CreatedAt,
		ResolvedBy:   g.ResolvedBy,
		ResolvedAt:   g.ResolvedAt,
	}
}
