package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/events"
	"github.com/spec-kit/grievance-service/internal/repository"
	apperrors "github.com/spec-kit/grievance-service/pkg/util"
)

// CommentService manages append-only grievance comments.
type CommentService struct {
	comments   repository.CommentRepository
	grievances repository.GrievanceRepository
	dispatcher events.Dispatcher
}

// CommentDependencies bundles repositories.
type CommentDependencies struct {
	CommentRepo   repository.CommentRepository
	GrievanceRepo repository.GrievanceRepository
	Dispatcher    events.Dispatcher
}

// NewCommentService creates the service.
func NewCommentService(deps CommentDependencies) *CommentService {
	return &CommentService{
		comments:   deps.CommentRepo,
		grievances: deps.GrievanceRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create appends a comment to a grievance. Authorship comes from the
// resolved caller, never from a request field.
func (s *CommentService) Create(ctx context.Context, author *domain.Actor, grievanceID, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewValidationError("content required", nil)
	}
	if _, err := s.grievances.GetByID(ctx, grievanceID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("grievance", map[string]any{"grievance_id": grievanceID})
		}
		return nil, apperrors.MapError(err)
	}

	comment := &domain.Comment{
		GrievanceID: grievanceID,
		UserID:      author.ID,
		Content:     content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		preview := comment.Content
		if len(preview) > 80 {
			preview = preview[:80]
		}
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:          uuid.NewString(),
			Type:        events.EventCommentAdded,
			GrievanceID: grievanceID,
			Actor:       events.Actor{ID: author.ID, Role: author.Role},
			Timestamp:   time.Now(),
			Payload: events.CommentAddedPayload{
				CommentID:   comment.ID,
				AuthorID:    author.ID,
				BodyPreview: preview,
			},
		})
	}
	return comment, nil
}

// ListByGrievance returns comments in creation order.
func (s *CommentService) ListByGrievance(ctx context.Context, grievanceID string) ([]domain.Comment, error) {
	comments, err := s.comments.ListByGrievance(ctx, grievanceID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return comments, nil
}
