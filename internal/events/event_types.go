package events

import (
	"time"

	"github.com/spec-kit/grievance-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventGrievanceCreated  EventType = "grievance_created"
	EventGrievanceAssigned EventType = "grievance_assigned"
	EventGrievanceResolved EventType = "grievance_resolved"
	EventCommentAdded      EventType = "comment_added"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	ID   string      `json:"id"`
	Role domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	GrievanceID string      `json:"grievance_id"`
	Actor       Actor       `json:"actor"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// GrievanceCreatedPayload payload.
type GrievanceCreatedPayload struct {
	TicketID     string `json:"ticket_id"`
	DepartmentID string `json:"department_id"`
}

// GrievanceAssignedPayload payload. One event is emitted per batch with
// the number of grievances distributed.
type GrievanceAssignedPayload struct {
	AssignedCount int `json:"assigned_count"`
	EmployeeCount int `json:"employee_count"`
}

// GrievanceResolvedPayload payload.
type GrievanceResolvedPayload struct {
	Status     domain.GrievanceStatus `json:"status"`
	ResolvedBy string                 `json:"resolved_by"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	CommentID   string `json:"comment_id"`
	AuthorID    string `json:"author_id"`
	BodyPreview string `json:"body_preview"`
}
