package dto

import (
	"time"

	"github.com/itrustbank/itrust_backend/internal/core/domain"
)

// LoginRequest carries operator credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token and the operator it belongs to.
type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Employee  EmployeeResponse `json:"employee"`
}

// CreateEmployeeRequest defines the data needed to register an operator.
type CreateEmployeeRequest struct {
	Username string      `json:"username" binding:"required,min=3"`
	Password string      `json:"password" binding:"required,min=8"`
	Name     string      `json:"name" binding:"required"`
	Role     domain.Role `json:"role" binding:"required,oneof=Manager Teller"`
}

// EmployeeResponse defines the data returned for an operator. The password
// hash never leaves the service layer.
type EmployeeResponse struct {
	EmployeeID string      `json:"employeeID"`
	Username   string      `json:"username"`
	Name       string      `json:"name"`
	Role       domain.Role `json:"role"`
	IsActive   bool        `json:"isActive"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.EmployeeID,
		Username:   e.Username,
		Name:       e.Name,
		Role:       e.Role,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt,
	}
}

// ListEmployeesResponse wraps the operator list.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// SetEmployeeActiveRequest flips an operator's active flag.
type SetEmployeeActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
