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

type numberingHandler struct {
	numberingService portssvc.NumberingSvc
}

// registerNumberingRoutes registers document number and UID routes.
func registerNumberingRoutes(rg *gin.RouterGroup, numberingService portssvc.NumberingSvc) {
	h := &numberingHandler{numberingService: numberingService}

	numbers := rg.Group("/document-numbers/:docType")
	{
		numbers.POST("/next", h.nextNumber)
		numbers.GET("/peek", h.peekNumber)
		numbers.PUT("", h.resetSequence)
	}
	rg.POST("/document-uids", h.generateUID)
}

func bindDocType(c *gin.Context) (domain.DocumentType, bool) {
	var uri dto.DocumentTypeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "document type", err)
		return "", false
	}
	return domain.DocumentType(uri.DocType), true
}

// nextNumber godoc
// @Summary Issue the next document number
// @Description Atomically takes the next gapless number of the document type
// @Tags numbering
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   docType path string true "Document type, e.g. sales_invoice"
// @Success 201 {object} dto.DocumentNumberResponse
// @Failure 400 {object} ErrorResponse "Invalid document type"
// @Failure 500 {object} ErrorResponse "Failed to issue number"
// @Router /document-numbers/{docType}/next [post]
func (h *numberingHandler) nextNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	docType, ok := bindDocType(c)
	if !ok {
		return
	}

	number, err := h.numberingService.GetNextNumber(c.Request.Context(), organizationID, docType)
	if err != nil {
		respondError(c, err, "Failed to issue number")
		return
	}

	logger.Info("Document number issued", slog.String("doc_type", string(docType)), slog.String("number", number))
	c.JSON(http.StatusCreated, dto.DocumentNumberResponse{DocumentType: docType, Number: number})
}

// peekNumber godoc
// @Summary Preview the next document number
// @Description Returns the number the next call to /next would issue without consuming it
// @Tags numbering
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   docType path string true "Document type"
// @Success 200 {object} dto.DocumentNumberResponse
// @Failure 400 {object} ErrorResponse "Invalid document type"
// @Failure 500 {object} ErrorResponse "Failed to preview number"
// @Router /document-numbers/{docType}/peek [get]
func (h *numberingHandler) peekNumber(c *gin.Context) {
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	docType, ok := bindDocType(c)
	if !ok {
		return
	}

	number, err := h.numberingService.PeekNextNumber(c.Request.Context(), organizationID, docType)
	if err != nil {
		respondError(c, err, "Failed to preview number")
		return
	}
	c.JSON(http.StatusOK, dto.DocumentNumberResponse{DocumentType: docType, Number: number})
}

// resetSequence godoc
// @Summary Reset a document sequence
// @Tags numbering
// @Accept  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   docType path string true "Document type"
// @Param   sequence body dto.ResetSequenceRequest true "Next number to issue"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to reset sequence"
// @Router /document-numbers/{docType} [put]
func (h *numberingHandler) resetSequence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, actorID, ok := tenant(c)
	if !ok {
		return
	}
	docType, ok := bindDocType(c)
	if !ok {
		return
	}
	var req dto.ResetSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	if err := h.numberingService.ResetSequence(c.Request.Context(), organizationID, docType, req.NextNumber); err != nil {
		respondError(c, err, "Failed to reset sequence")
		return
	}

	logger.Warn("Document sequence reset", slog.String("doc_type", string(docType)), slog.Int64("next_number", req.NextNumber), slog.String("actor_id", actorID))
	c.Status(http.StatusNoContent)
}

// generateUID godoc
// @Summary Generate a document UID
// @Description Builds a UID from the document type, the organization and an optional number
// @Tags numbering
// @Accept  json
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   uid body dto.GenerateUIDRequest true "UID parts"
// @Success 201 {object} dto.DocumentUIDResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Router /document-uids [post]
func (h *numberingHandler) generateUID(c *gin.Context) {
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	var req dto.GenerateUIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	uid := h.numberingService.GenerateDocumentUID(req.DocumentType, organizationID, req.Number)
	resp := dto.DocumentUIDResponse{UID: uid}
	if parts, err := h.numberingService.ParseDocumentUID(uid); err == nil {
		resp.Parts = parts
	}
	c.JSON(http.StatusCreated, resp)
}
