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

type vatHandler struct {
	vatService portssvc.VatSvcFacade
}

// registerVatRoutes registers VAT register and return routes.
func registerVatRoutes(rg *gin.RouterGroup, vatService portssvc.VatSvcFacade) {
	h := &vatHandler{vatService: vatService}

	vat := rg.Group("/vat")
	{
		vat.POST("/sales", h.recordSale)
		vat.POST("/purchases", h.recordPurchase)
		vat.GET("/registers/:year/:month", h.listRegisters)

		returns := vat.Group("/returns/:year/:month")
		returns.GET("", h.getReturn)
		returns.POST("/compute", h.computeReturn)
		returns.POST("/submit", h.submitReturn)
		returns.POST("/accept", h.acceptReturn)
	}
}

func bindPeriod(c *gin.Context) (domain.Period, bool) {
	var uri dto.PeriodURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "period", err)
		return domain.Period{}, false
	}
	return uri.Period(), true
}

// recordSale godoc
// @Summary Record a sales document in the VAT register
// @Description Classifies a finalized sales document and upserts its sales register row
// @Tags vat
// @Accept  json
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   document body dto.SalesDocumentRequest true "Sales document"
// @Success 201 {object} domain.VatSalesRegister
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Document not finalized"
// @Failure 500 {object} ErrorResponse "Failed to record sale"
// @Router /vat/sales [post]
func (h *vatHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, actorID, ok := tenant(c)
	if !ok {
		return
	}
	var req dto.SalesDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	doc, err := req.ToDomain()
	if err != nil {
		badRequest(c, "request format", err)
		return
	}

	row, err := h.vatService.RecordSale(c.Request.Context(), organizationID, actorID, doc)
	if err != nil {
		respondError(c, err, "Failed to record sale")
		return
	}

	logger.Info("Sales register row recorded", slog.String("document_id", doc.DocumentID), slog.String("operation_code", row.VatOperationCode))
	c.JSON(http.StatusCreated, row)
}

// recordPurchase godoc
// @Summary Record a purchase document in the VAT register
// @Description Classifies a finalized purchase document and upserts its purchase register row
// @Tags vat
// @Accept  json
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   document body dto.PurchaseDocumentRequest true "Purchase document"
// @Success 201 {object} domain.VatPurchaseRegister
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Document not finalized"
// @Failure 500 {object} ErrorResponse "Failed to record purchase"
// @Router /vat/purchases [post]
func (h *vatHandler) recordPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, actorID, ok := tenant(c)
	if !ok {
		return
	}
	var req dto.PurchaseDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	doc, err := req.ToDomain()
	if err != nil {
		badRequest(c, "request format", err)
		return
	}

	row, err := h.vatService.RecordPurchase(c.Request.Context(), organizationID, actorID, doc)
	if err != nil {
		respondError(c, err, "Failed to record purchase")
		return
	}

	logger.Info("Purchase register row recorded", slog.String("document_id", doc.DocumentID), slog.String("operation_code", row.VatOperationCode))
	c.JSON(http.StatusCreated, row)
}

// listRegisters godoc
// @Summary List the VAT registers of a period
// @Tags vat
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   year path int true "Year"
// @Param   month path int true "Month"
// @Success 200 {object} dto.VatRegistersResponse
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 500 {object} ErrorResponse "Failed to list registers"
// @Router /vat/registers/{year}/{month} [get]
func (h *vatHandler) listRegisters(c *gin.Context) {
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	period, ok := bindPeriod(c)
	if !ok {
		return
	}

	sales, err := h.vatService.ListSalesRegister(c.Request.Context(), organizationID, period)
	if err != nil {
		respondError(c, err, "Failed to list registers")
		return
	}
	purchases, err := h.vatService.ListPurchaseRegister(c.Request.Context(), organizationID, period)
	if err != nil {
		respondError(c, err, "Failed to list registers")
		return
	}
	if sales == nil {
		sales = []domain.VatSalesRegister{}
	}
	if purchases == nil {
		purchases = []domain.VatPurchaseRegister{}
	}
	c.JSON(http.StatusOK, dto.VatRegistersResponse{Period: period.Code(), Sales: sales, Purchases: purchases})
}

type vatReturnFunc func(c *gin.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error)

// handleReturn runs one step of the VAT return lifecycle and writes the return.
func (h *vatHandler) handleReturn(c *gin.Context, action string, run vatReturnFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, actorID, ok := tenant(c)
	if !ok {
		return
	}
	period, ok := bindPeriod(c)
	if !ok {
		return
	}

	vatReturn, err := run(c, organizationID, actorID, period)
	if err != nil {
		respondError(c, err, "Failed to "+action+" VAT return")
		return
	}

	logger.Info("VAT return "+action+" completed", slog.String("period", period.Code()), slog.String("status", string(vatReturn.Status)))
	c.JSON(http.StatusOK, vatReturn)
}

// computeReturn godoc
// @Summary Compute the VAT return of a period
// @Description Recomputes the draft return from the registers; fails while documents of the period are unposted
// @Tags vat
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   year path int true "Year"
// @Param   month path int true "Month"
// @Success 200 {object} domain.VatReturn
// @Failure 409 {object} ErrorResponse "Unposted documents or return already submitted"
// @Failure 500 {object} ErrorResponse "Failed to compute VAT return"
// @Router /vat/returns/{year}/{month}/compute [post]
func (h *vatHandler) computeReturn(c *gin.Context) {
	h.handleReturn(c, "compute", func(c *gin.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error) {
		return h.vatService.ComputeVatReturn(c.Request.Context(), organizationID, actorID, period)
	})
}

// submitReturn godoc
// @Summary Submit the VAT return of a period
// @Tags vat
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   year path int true "Year"
// @Param   month path int true "Month"
// @Success 200 {object} domain.VatReturn
// @Failure 404 {object} ErrorResponse "Return not computed"
// @Failure 409 {object} ErrorResponse "Return is not a draft"
// @Router /vat/returns/{year}/{month}/submit [post]
func (h *vatHandler) submitReturn(c *gin.Context) {
	h.handleReturn(c, "submit", func(c *gin.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error) {
		return h.vatService.SubmitVatReturn(c.Request.Context(), organizationID, actorID, period)
	})
}

// acceptReturn godoc
// @Summary Mark the VAT return of a period as accepted
// @Tags vat
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   year path int true "Year"
// @Param   month path int true "Month"
// @Success 200 {object} domain.VatReturn
// @Failure 404 {object} ErrorResponse "Return not computed"
// @Failure 409 {object} ErrorResponse "Return is not submitted"
// @Router /vat/returns/{year}/{month}/accept [post]
func (h *vatHandler) acceptReturn(c *gin.Context) {
	h.handleReturn(c, "accept", func(c *gin.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error) {
		return h.vatService.AcceptVatReturn(c.Request.Context(), organizationID, actorID, period)
	})
}

// getReturn godoc
// @Summary Get the VAT return of a period
// @Tags vat
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   year path int true "Year"
// @Param   month path int true "Month"
// @Success 200 {object} domain.VatReturn
// @Failure 404 {object} ErrorResponse "Return not computed"
// @Router /vat/returns/{year}/{month} [get]
func (h *vatHandler) getReturn(c *gin.Context) {
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	period, ok := bindPeriod(c)
	if !ok {
		return
	}
	vatReturn, err := h.vatService.GetVatReturn(c.Request.Context(), organizationID, period)
	if err != nil {
		respondError(c, err, "Failed to retrieve VAT return")
		return
	}
	c.JSON(http.StatusOK, vatReturn)
}
