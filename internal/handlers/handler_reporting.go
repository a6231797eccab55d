package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/dto"
	"github.com/SscSPs/erp_accounting_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
	}
}

func bindRange(c *gin.Context) (time.Time, time.Time, bool) {
	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return time.Time{}, time.Time{}, false
	}
	from, to, err := params.Range()
	if err != nil {
		badRequest(c, "query parameters", err)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates an opening, period and closing turnover sheet for a date range
// @Tags reports
// @Produce json
// @Param X-Organization-ID header string true "Organization ID"
// @Param X-Actor-ID header string true "Acting user ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	from, to, ok := bindRange(c)
	if !ok {
		return
	}

	trialBalanceRows, err := h.reportingService.TrialBalance(c.Request.Context(), organizationID, from, to)
	if err != nil {
		respondError(c, err, "Failed to generate trial balance report")
		return
	}

	// Convert domain objects to DTO
	response := dto.ToTrialBalanceResponse(trialBalanceRows, from, to)

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(trialBalanceRows)))
	c.JSON(http.StatusOK, response)
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Generates a profit and loss report for a specific period
// @Tags reports
// @Produce json
// @Param X-Organization-ID header string true "Organization ID"
// @Param X-Actor-ID header string true "Acting user ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	from, to, ok := bindRange(c)
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), organizationID, from, to)
	if err != nil {
		respondError(c, err, "Failed to generate profit and loss report")
		return
	}

	logger.Info("Profit and loss report generated successfully")
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report, from, to))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Generates a balance sheet from closing balances as of a specific date
// @Tags reports
// @Produce json
// @Param X-Organization-ID header string true "Organization ID"
// @Param X-Actor-ID header string true "Acting user ID"
// @Param asOf query string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	asOf, err := time.Parse(dto.DateLayout, params.AsOf)
	if err != nil {
		badRequest(c, "query parameters", err)
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), organizationID, asOf)
	if err != nil {
		respondError(c, err, "Failed to generate balance sheet report")
		return
	}

	logger.Info("Balance sheet report generated successfully")
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report, asOf))
}
