package dto

import (
	"time"

	"github.com/spec-kit/grievance-service/internal/domain"
)

// CommentCreateRequest payload for adding a comment. The author is the
// authenticated caller.
type CommentCreateRequest struct {
	GrievanceID string `json:"grievance_id"`
	Content     string `json:"content"`
}

// CommentResponse serialized comment.
type CommentResponse struct {
	ID          string    `json:"id"`
	GrievanceID string    `json:"grievance_id"`
	UserID      string    `json:"user_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCommentResponse maps a comment.
func NewCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		GrievanceID: c.GrievanceID,
		UserID:      c.UserID,
		Content:     c.Content,
		CreatedAt:   c.CreatedAt,
	}
}
