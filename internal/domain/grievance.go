package domain

import "time"

// GrievanceStatus enumerates lifecycle states for grievances.
type GrievanceStatus string

const (
	GrievanceStatusPending   GrievanceStatus = "pending"
	GrievanceStatusSolved    GrievanceStatus = "solved"
	GrievanceStatusNotSolved GrievanceStatus = "not_solved"
)

// Grievance is the root aggregate. TicketID is a globally unique opaque
// token stamped at creation and never reused. AssignedTo is set only by
// the assignment engine. ResolvedBy and ResolvedAt are written together
// by resolve calls.
type Grievance struct {
	ID           string
	TicketID     string
	UserID       string
	DepartmentID string
	AssignedTo   *string
	Status       GrievanceStatus
	CreatedAt    time.Time
	ResolvedBy   *string
	ResolvedAt   *time.Time
}
