package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/itrustbank/itrust_backend/internal/core/ports/services"
	"github.com/itrustbank/itrust_backend/internal/dto"
	"github.com/itrustbank/itrust_backend/internal/middleware"
)

// EmployeeHandler exposes operator administration. Every route is
// Manager-only.
type EmployeeHandler struct {
	employeeService portssvc.EmployeeSvc
}

func NewEmployeeHandler(employeeService portssvc.EmployeeSvc) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// CreateEmployee godoc
// @Summary Register an operator
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Operator details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username taken"
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, operatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// ListEmployees godoc
// @Summary List operators
// @Tags employees
// @Produce json
// @Success 200 {object} dto.ListEmployeesResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	res := dto.ListEmployeesResponse{Employees: make([]dto.EmployeeResponse, len(employees))}
	for i := range employees {
		res.Employees[i] = dto.ToEmployeeResponse(&employees[i])
	}
	c.JSON(http.StatusOK, res)
}

// SetEmployeeActive godoc
// @Summary Activate or deactivate an operator
// @Description Operators cannot deactivate their own account
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param body body dto.SetEmployeeActiveRequest true "Active flag"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/active [put]
func (h *EmployeeHandler) SetEmployeeActive(c *gin.Context) {
	var req dto.SetEmployeeActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	employeeID := c.Param("employeeID")
	if err := h.employeeService.SetEmployeeActive(c.Request.Context(), employeeID, *req.IsActive, operatorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employeeID": employeeID, "isActive": *req.IsActive})
}
