package dto

import "github.com/spec-kit/grievance-service/internal/domain"

// DepartmentRequest payload for creating a department.
type DepartmentRequest struct {
	Name string `json:"name"`
}

// DepartmentResponse serialized department.
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewDepartmentResponse maps a department.
func NewDepartmentResponse(dept *domain.Department) DepartmentResponse {
	return DepartmentResponse{ID: dept.ID, Name: dept.Name}
}
