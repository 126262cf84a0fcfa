package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/itrustbank/itrust_backend/internal/core/ports/services"
	"github.com/itrustbank/itrust_backend/internal/dto"
	"github.com/itrustbank/itrust_backend/internal/middleware"
)

// LedgerHandler exposes the balance-affecting operations over HTTP.
type LedgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

func NewLedgerHandler(ledgerService portssvc.LedgerSvc) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// Deposit godoc
// @Summary Deposit into an account
// @Tags ledger
// @Accept json
// @Produce json
// @Param identifier path string true "Account ID"
// @Param amount body dto.AmountRequest true "Deposit amount"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{identifier}/deposits [post]
func (h *LedgerHandler) Deposit(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.ledgerService.Deposit(c.Request.Context(), c.Param("identifier"), req.Amount, operatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// Withdraw godoc
// @Summary Withdraw from an account
// @Tags ledger
// @Accept json
// @Produce json
// @Param identifier path string true "Account ID"
// @Param amount body dto.AmountRequest true "Withdrawal amount"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient funds"
// @Security BearerAuth
// @Router /accounts/{identifier}/withdrawals [post]
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.ledgerService.Withdraw(c.Request.Context(), c.Param("identifier"), req.Amount, operatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// ApplyFeeCycle godoc
// @Summary Run the fee-cycle check for an account
// @Description Advances the weekly counter and applies monthly interest or the checking fee when due
// @Tags ledger
// @Produce json
// @Param identifier path string true "Account ID"
// @Success 200 {object} dto.FeeCycleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{identifier}/fee-cycle [post]
func (h *LedgerHandler) ApplyFeeCycle(c *gin.Context) {
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	account, txn, err := h.ledgerService.ApplyFeeCycle(c.Request.Context(), c.Param("identifier"), operatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	res := dto.FeeCycleResponse{
		AccountID:       account.AccountID,
		Applied:         txn != nil,
		FeeCycleCounter: account.FeeCycleCounter,
	}
	if txn != nil {
		t := dto.ToTransactionResponse(txn)
		res.Transaction = &t
	}
	c.JSON(http.StatusOK, res)
}

// ListTransactions godoc
// @Summary List an account's transaction history
// @Description Returns the history newest first
// @Tags ledger
// @Produce json
// @Param identifier path string true "Account ID"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{identifier}/transactions [get]
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	accountID := c.Param("identifier")
	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(accountID, txns))
}
