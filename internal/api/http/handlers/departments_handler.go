package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grievance-service/internal/api/dto"
	"github.com/spec-kit/grievance-service/internal/service"
)

// DepartmentsHandler exposes department endpoints.
type DepartmentsHandler struct {
	directory *service.DirectoryService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(directory *service.DirectoryService) *DepartmentsHandler {
	return &DepartmentsHandler{directory: directory}
}

// Create handles POST /departments.
func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	dept, err := h.directory.CreateDepartment(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewDepartmentResponse(dept)})
}

// List handles GET /departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	depts, err := h.directory.ListDepartments(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		resp = append(resp, dto.NewDepartmentResponse(&depts[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}
