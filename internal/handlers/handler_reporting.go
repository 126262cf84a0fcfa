package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/itrustbank/itrust_backend/internal/core/ports/services"
)

// ReportingHandler serves the manager dashboard aggregates.
type ReportingHandler struct {
	reportingService portssvc.ReportingSvc
}

func NewReportingHandler(reportingService portssvc.ReportingSvc) *ReportingHandler {
	return &ReportingHandler{reportingService: reportingService}
}

// Summary godoc
// @Summary Bank-wide totals
// @Description Account count, deposit and withdrawal totals, and transaction count
// @Tags reports
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *ReportingHandler) Summary(c *gin.Context) {
	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
