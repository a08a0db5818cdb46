package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grievance-service/internal/api/dto"
	"github.com/spec-kit/grievance-service/internal/auth"
	"github.com/spec-kit/grievance-service/internal/service"
	apperrors "github.com/spec-kit/grievance-service/pkg/util"
)

// CommentsHandler exposes comment endpoints.
type CommentsHandler struct {
	comments *service.CommentService
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(comments *service.CommentService) *CommentsHandler {
	return &CommentsHandler{comments: comments}
}

// Create handles POST /comments.
func (h *CommentsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CommentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.GrievanceID == "" || req.Content == "" {
		return fiber.NewError(http.StatusBadRequest, "grievance_id and content required")
	}

	comment, err := h.comments.Create(c.Context(), actor, req.GrievanceID, req.Content)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// ListByGrievance handles GET /comments/grievance/:id.
func (h *CommentsHandler) ListByGrievance(c *fiber.Ctx) error {
	comments, err := h.comments.ListByGrievance(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	resp := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, dto.NewCommentResponse(&comments[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}
