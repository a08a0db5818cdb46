package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grievance-service/internal/api/dto"
	"github.com/spec-kit/grievance-service/internal/auth"
	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/service"
	apperrors "github.com/spec-kit/grievance-service/pkg/util"
)

// ActorsHandler exposes actor directory endpoints.
type ActorsHandler struct {
	directory *service.DirectoryService
}

// NewActorsHandler constructs handler.
func NewActorsHandler(directory *service.DirectoryService) *ActorsHandler {
	return &ActorsHandler{directory: directory}
}

// Create handles POST /actors.
func (h *ActorsHandler) Create(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	actor, err := h.directory.CreateActor(c.Context(), service.ActorCreateInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FullActor(actor)})
}

// List handles GET /actors. The response projection depends on the
// caller's role.
func (h *ActorsHandler) List(c *fiber.Ctx) error {
	viewer, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var roleFilter *domain.Role
	if val := c.Query("role"); val != "" {
		role := domain.Role(val)
		if !role.Valid() {
			return fiber.NewError(http.StatusBadRequest, "unknown role filter")
		}
		roleFilter = &role
	}

	actors, err := h.directory.ListActors(c.Context(), roleFilter)
	if err != nil {
		return err
	}

	resp := make([]any, 0, len(actors))
	for i := range actors {
		resp = append(resp, dto.ProjectActor(viewer, &actors[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /actors/:id.
func (h *ActorsHandler) Get(c *fiber.Ctx) error {
	viewer, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	actor, err := h.directory.GetActor(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ProjectActor(viewer, actor)})
}
