package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grievance-service/internal/api/dto"
	"github.com/spec-kit/grievance-service/internal/auth"
	"github.com/spec-kit/grievance-service/internal/service"
	apperrors "github.com/spec-kit/grievance-service/pkg/util"
)

// GrievancesHandler exposes grievance lifecycle endpoints.
type GrievancesHandler struct {
	grievances *service.GrievanceService
}

// NewGrievancesHandler constructs handler.
func NewGrievancesHandler(grievances *service.GrievanceService) *GrievancesHandler {
	return &GrievancesHandler{grievances: grievances}
}

// Create handles POST /grievances.
func (h *GrievancesHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.GrievanceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.DepartmentID == "" {
		return fiber.NewError(http.StatusBadRequest, "department_id required")
	}

	grievance, err := h.grievances.Create(c.Context(), actor, req.DepartmentID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewGrievanceResponse(grievance)})
}

// List handles GET /grievances with role-scoped visibility.
func (h *GrievancesHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	grievances, err := h.grievances.ListForActor(c.Context(), actor)
	if err != nil {
		return err
	}
	resp := make([]dto.GrievanceResponse, 0, len(grievances))
	for i := range grievances {
		resp = append(resp, dto.NewGrievanceResponse(&grievances[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// AssignPending handles POST /grievances/assign.
func (h *GrievancesHandler) AssignPending(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	assigned, err := h.grievances.AssignPending(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"assigned": assigned}})
}

// Resolve handles POST /grievances/:id/resolve.
func (h *GrievancesHandler) Resolve(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.GrievanceResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	solved := true
	if req.Solved != nil {
		solved = *req.Solved
	}

	grievance, err := h.grievances.Resolve(c.Context(), actor, c.Params("id"), req.ResolverID, solved)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewGrievanceResponse(grievance)})
}
