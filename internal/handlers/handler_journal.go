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

// journalHandler handles HTTP requests related to journal entries and
// the posting of business documents.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers the journal entry and posting routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.postEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/reverse", h.reverseEntry)
		entries.PUT("/:entryID", h.updateEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
	}

	rg.POST("/payments/post", h.postPayment)
	rg.POST("/bank-transactions/post", h.postBankTransaction)
	rg.POST("/asset-transactions/post", h.postAssetTransaction)
}

// postEntry godoc
// @Summary Post a journal entry
// @Description Validates, balances and persists a manual journal entry. Amounts are rounded to 2 decimals.
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   entry body dto.PostEntryRequest true "Entry and its lines"
// @Success 201 {object} domain.PostedEntry
// @Failure 400 {object} ErrorResponse "Invalid input or unbalanced entry"
// @Failure 404 {object} ErrorResponse "Organization or account not found"
// @Failure 500 {object} ErrorResponse "Failed to post entry"
// @Router /journal-entries [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, actorID, ok := tenant(c)
	if !ok {
		return
	}
	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	input, err := req.ToPostEntryInput()
	if err != nil {
		badRequest(c, "request format", err)
		return
	}

	posted, err := h.journalService.Post(c.Request.Context(), organizationID, actorID, input)
	if err != nil {
		respondError(c, err, "Failed to post entry")
		return
	}

	logger.Info("Journal entry posted", slog.String("entry_id", posted.Entry.EntryID))
	c.JSON(http.StatusCreated, posted)
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entries newest first with token pagination
// @Tags journal
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   from query string false "First entry date (YYYY-MM-DD)"
// @Param   to query string false "Last entry date (YYYY-MM-DD)"
// @Param   accountID query string false "Only entries touching this account"
// @Param   reference query string false "Reference filter"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Failed to list entries"
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		badRequest(c, "query parameters", err)
		return
	}

	entries, nextToken, err := h.journalService.ListEntries(c.Request.Context(), organizationID, filter)
	if err != nil {
		respondError(c, err, "Failed to list entries")
		return
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: entries, NextToken: nextToken})
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journal
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} domain.PostedEntry
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve entry"
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	entry, err := h.journalService.GetEntry(c.Request.Context(), organizationID, c.Param("entryID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// reverseEntry godoc
// @Summary Reverse a journal entry
// @Description Posts the mirror entry and marks the original as reversed
// @Tags journal
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   entryID path string true "Entry ID"
// @Success 201 {object} domain.PostedEntry
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Entry already reversed"
// @Failure 500 {object} ErrorResponse "Failed to reverse entry"
// @Router /journal-entries/{entryID}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, actorID, ok := tenant(c)
	if !ok {
		return
	}
	entryID := c.Param("entryID")

	reversal, err := h.journalService.Reverse(c.Request.Context(), organizationID, actorID, entryID)
	if err != nil {
		respondError(c, err, "Failed to reverse entry")
		return
	}

	logger.Info("Journal entry reversed", slog.String("entry_id", entryID), slog.String("reversal_id", reversal.Entry.EntryID))
	c.JSON(http.StatusCreated, reversal)
}

// updateEntry godoc
// @Summary Update a journal entry
// @Description Posted entries are immutable; an existing entry always yields 409
// @Tags journal
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   entryID path string true "Entry ID"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Entry already posted"
// @Router /journal-entries/{entryID} [put]
func (h *journalHandler) updateEntry(c *gin.Context) {
	organizationID, actorID, ok := tenant(c)
	if !ok {
		return
	}
	if err := h.journalService.Update(c.Request.Context(), organizationID, actorID, c.Param("entryID")); err != nil {
		respondError(c, err, "Failed to update entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Posted entries are immutable; an existing entry always yields 409
// @Tags journal
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   entryID path string true "Entry ID"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Entry already posted"
// @Router /journal-entries/{entryID} [delete]
func (h *journalHandler) deleteEntry(c *gin.Context) {
	organizationID, actorID, ok := tenant(c)
	if !ok {
		return
	}
	if err := h.journalService.Delete(c.Request.Context(), organizationID, actorID, c.Param("entryID")); err != nil {
		respondError(c, err, "Failed to delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}

type postSourceFunc func(c *gin.Context, organizationID, actorID, id string) (*domain.PostedEntry, error)

// postSource binds the source ID and runs the matching posting recipe.
func (h *journalHandler) postSource(c *gin.Context, kind string, post postSourceFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, actorID, ok := tenant(c)
	if !ok {
		return
	}
	var req dto.PostSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	posted, err := post(c, organizationID, actorID, req.ID)
	if err != nil {
		respondError(c, err, "Failed to post "+kind)
		return
	}

	logger.Info("Document posted", slog.String("kind", kind), slog.String("source_id", req.ID), slog.String("entry_id", posted.Entry.EntryID))
	c.JSON(http.StatusCreated, posted)
}

// postPayment godoc
// @Summary Post a payment
// @Description Posts a customer or supplier payment through its recipe and links the entry
// @Tags posting
// @Accept  json
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   source body dto.PostSourceRequest true "Payment ID"
// @Success 201 {object} domain.PostedEntry
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 409 {object} ErrorResponse "Payment already posted"
// @Failure 422 {object} ErrorResponse "Default account missing"
// @Router /payments/post [post]
func (h *journalHandler) postPayment(c *gin.Context) {
	h.postSource(c, "payment", func(c *gin.Context, organizationID, actorID, id string) (*domain.PostedEntry, error) {
		return h.journalService.PostForPayment(c.Request.Context(), organizationID, actorID, id)
	})
}

// postBankTransaction godoc
// @Summary Post a bank transaction
// @Tags posting
// @Accept  json
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   source body dto.PostSourceRequest true "Bank transaction ID"
// @Success 201 {object} domain.PostedEntry
// @Failure 404 {object} ErrorResponse "Bank transaction not found"
// @Failure 409 {object} ErrorResponse "Bank transaction already posted"
// @Failure 422 {object} ErrorResponse "Default account missing"
// @Router /bank-transactions/post [post]
func (h *journalHandler) postBankTransaction(c *gin.Context) {
	h.postSource(c, "bank transaction", func(c *gin.Context, organizationID, actorID, id string) (*domain.PostedEntry, error) {
		return h.journalService.PostForBankTransaction(c.Request.Context(), organizationID, actorID, id)
	})
}

// postAssetTransaction godoc
// @Summary Post an asset transaction
// @Tags posting
// @Accept  json
// @Produce  json
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   source body dto.PostSourceRequest true "Asset transaction ID"
// @Success 201 {object} domain.PostedEntry
// @Failure 404 {object} ErrorResponse "Asset transaction not found"
// @Failure 409 {object} ErrorResponse "Asset transaction already posted"
// @Failure 422 {object} ErrorResponse "Default account missing"
// @Router /asset-transactions/post [post]
func (h *journalHandler) postAssetTransaction(c *gin.Context) {
	h.postSource(c, "asset transaction", func(c *gin.Context, organizationID, actorID, id string) (*domain.PostedEntry, error) {
		return h.journalService.PostForAssetTransaction(c.Request.Context(), organizationID, actorID, id)
	})
}
