package domain

import "time"

// Comment is an append-only annotation on a grievance. There is no edit
// or delete operation.
type Comment struct {
	ID          string
	GrievanceID string
	UserID      string
	Content     string
	CreatedAt   time.Time
}
