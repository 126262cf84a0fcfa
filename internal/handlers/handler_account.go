package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/itrustbank/itrust_backend/internal/core/ports/services"
	"github.com/itrustbank/itrust_backend/internal/dto"
	"github.com/itrustbank/itrust_backend/internal/middleware"
)

// AccountHandler exposes account management over HTTP.
type AccountHandler struct {
	accountService portssvc.AccountSvc
}

func NewAccountHandler(accountService portssvc.AccountSvc) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount godoc
// @Summary Open a new customer account
// @Description Opens an account and posts its initial deposit atomically
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, operatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// GetAccount godoc
// @Summary Look up one account
// @Description Matches the identifier against customer ID, account ID, or email
// @Tags accounts
// @Produce json
// @Param identifier path string true "Customer ID, account ID, or email"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{identifier} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByIdentifier(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// ListAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// SearchAccounts godoc
// @Summary Search accounts
// @Description Case-insensitive substring match over IDs, name, and email
// @Tags accounts
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/search [get]
func (h *AccountHandler) SearchAccounts(c *gin.Context) {
	var params dto.SearchAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	accounts, err := h.accountService.SearchAccounts(c.Request.Context(), params.Query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// UpdateAccount godoc
// @Summary Edit an account's profile
// @Description Updates only the provided fields. Balance and type are immutable here.
// @Tags accounts
// @Accept json
// @Produce json
// @Param identifier path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{identifier} [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("identifier"), req, operatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// DeactivateAccount godoc
// @Summary Deactivate an account
// @Tags accounts
// @Produce json
// @Param identifier path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{identifier}/deactivate [post]
func (h *AccountHandler) DeactivateAccount(c *gin.Context) {
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	accountID := c.Param("identifier")
	if err := h.accountService.DeactivateAccount(c.Request.Context(), accountID, operatorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accountID": accountID, "status": "deactivated"})
}

// ReactivateAccount godoc
// @Summary Reactivate an account
// @Tags accounts
// @Produce json
// @Param identifier path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{identifier}/reactivate [post]
func (h *AccountHandler) ReactivateAccount(c *gin.Context) {
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	accountID := c.Param("identifier")
	if err := h.accountService.ReactivateAccount(c.Request.Context(), accountID, operatorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accountID": accountID, "status": "active"})
}

// DeleteAccount godoc
// @Summary Delete an account
// @Description Accounts with transaction history are deactivated instead of removed
// @Tags accounts
// @Produce json
// @Param identifier path string true "Account ID"
// @Success 200 {object} dto.DeleteAccountResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{identifier} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	accountID := c.Param("identifier")
	deactivated, err := h.accountService.DeleteAccount(c.Request.Context(), accountID, operatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteAccountResponse{
		AccountID:   accountID,
		Deleted:     !deactivated,
		Deactivated: deactivated,
	})
}
