package domain

import "time"

// PasswordResetToken is a single-use credential for the reset flow.
type PasswordResetToken struct {
	ID        string
	ActorID   string
	Token     string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
