package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/itrustbank/itrust_backend/internal/apperrors"
	portssvc "github.com/itrustbank/itrust_backend/internal/core/ports/services"
	"github.com/itrustbank/itrust_backend/internal/dto"
	"github.com/itrustbank/itrust_backend/internal/middleware"
)

// AuthHandler issues operator session tokens.
type AuthHandler struct {
	employeeService portssvc.EmployeeSvc
	jwtSecret       string
	jwtExpiry       time.Duration
	jwtIssuer       string
}

func NewAuthHandler(employeeService portssvc.EmployeeSvc, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) *AuthHandler {
	return &AuthHandler{
		employeeService: employeeService,
		jwtSecret:       jwtSecret,
		jwtExpiry:       jwtExpiry,
		jwtIssuer:       jwtIssuer,
	}
}

// Login godoc
// @Summary Operator login
// @Description Verifies credentials and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Operator credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Operator deactivated"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	employee, err := h.employeeService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Credential failures come back as ErrValidation; report 401
		// rather than the usual 400.
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid username or password"})
			return
		}
		respondError(c, err)
		return
	}

	now := time.Now()
	expiresAt := now.Add(h.jwtExpiry)
	claims := middleware.SessionClaims{
		Role: string(employee.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   employee.EmployeeID,
			Issuer:    h.jwtIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An internal error occurred"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		Employee:  dto.ToEmployeeResponse(employee),
	})
}
