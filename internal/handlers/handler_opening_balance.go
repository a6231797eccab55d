package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/dto"
	"github.com/SscSPs/erp_accounting_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type openingBalanceHandler struct {
	openingBalanceService portssvc.OpeningBalanceSvc
}

// registerOpeningBalanceRoutes registers contraagent opening balance routes.
func registerOpeningBalanceRoutes(rg *gin.RouterGroup, openingBalanceService portssvc.OpeningBalanceSvc) {
	h := &openingBalanceHandler{openingBalanceService: openingBalanceService}

	rg.PUT("/contraagents/:contraagentID/opening-balance", h.setOpeningBalance)
	rg.DELETE("/contraagents/:contraagentID/opening-balance", h.removeOpeningBalance)

	balances := rg.Group("/opening-balances")
	{
		balances.GET("", h.listOpeningBalances)
		balances.GET("/totals", h.openingBalanceTotals)
	}
}

// setOpeningBalance godoc
// @Summary Set the opening balance of a contraagent
// @Description Replaces any previous balance, posting against equity account 123. Zero on both sides removes it.
// @Tags opening-balances
// @Accept  json
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   contraagentID path string true "Contraagent ID"
// @Param   balance body dto.SetOpeningBalanceRequest true "Debit and credit amounts"
// @Success 200 {object} dto.OpeningBalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid amounts or contraagent without role"
// @Failure 404 {object} ErrorResponse "Contraagent not found"
// @Failure 422 {object} ErrorResponse "Default account missing"
// @Failure 500 {object} ErrorResponse "Failed to set opening balance"
// @Router /contraagents/{contraagentID}/opening-balance [put]
func (h *openingBalanceHandler) setOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, actorID, ok := tenant(c)
	if !ok {
		return
	}
	contraagentID := c.Param("contraagentID")
	var req dto.SetOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	contraagent, entry, err := h.openingBalanceService.SetOpeningBalance(c.Request.Context(), organizationID, actorID, contraagentID, req.Debit, req.Credit, req.Description)
	if err != nil {
		respondError(c, err, "Failed to set opening balance")
		return
	}

	logger.Info("Opening balance set", slog.String("contraagent_id", contraagentID))
	c.JSON(http.StatusOK, dto.OpeningBalanceResponse{Contraagent: *contraagent, Entry: entry})
}

// removeOpeningBalance godoc
// @Summary Remove the opening balance of a contraagent
// @Tags opening-balances
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   contraagentID path string true "Contraagent ID"
// @Success 200 {object} dto.OpeningBalanceResponse
// @Failure 404 {object} ErrorResponse "Contraagent not found"
// @Failure 500 {object} ErrorResponse "Failed to remove opening balance"
// @Router /contraagents/{contraagentID}/opening-balance [delete]
func (h *openingBalanceHandler) removeOpeningBalance(c *gin.Context) {
	organizationID, actorID, ok := tenant(c)
	if !ok {
		return
	}
	contraagent, entry, err := h.openingBalanceService.RemoveOpeningBalance(c.Request.Context(), organizationID, actorID, c.Param("contraagentID"))
	if err != nil {
		respondError(c, err, "Failed to remove opening balance")
		return
	}
	c.JSON(http.StatusOK, dto.OpeningBalanceResponse{Contraagent: *contraagent, Entry: entry})
}

// listOpeningBalances godoc
// @Summary List contraagent opening balances
// @Tags opening-balances
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   customersOnly query bool false "Only customers"
// @Param   suppliersOnly query bool false "Only suppliers"
// @Param   withBalance query bool false "Only contraagents with a non-zero balance"
// @Success 200 {object} dto.ListOpeningBalancesResponse
// @Failure 500 {object} ErrorResponse "Failed to list opening balances"
// @Router /opening-balances [get]
func (h *openingBalanceHandler) listOpeningBalances(c *gin.Context) {
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	var params dto.ListOpeningBalancesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}

	contraagents, err := h.openingBalanceService.ListOpeningBalances(c.Request.Context(), organizationID, params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to list opening balances")
		return
	}
	if contraagents == nil {
		contraagents = []domain.Contraagent{}
	}
	c.JSON(http.StatusOK, dto.ListOpeningBalancesResponse{Contraagents: contraagents})
}

// openingBalanceTotals godoc
// @Summary Opening balance totals per role
// @Tags opening-balances
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Success 200 {object} domain.OpeningBalanceTotals
// @Failure 500 {object} ErrorResponse "Failed to compute totals"
// @Router /opening-balances/totals [get]
func (h *openingBalanceHandler) openingBalanceTotals(c *gin.Context) {
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	totals, err := h.openingBalanceService.OpeningBalanceTotals(c.Request.Context(), organizationID)
	if err != nil {
		respondError(c, err, "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, totals)
}
