package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps the service error taxonomy to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrUnbalancedEntry),
		errors.Is(err, apperrors.ErrInvalidCounterparty):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrAlreadyPosted),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrPeriodNotReady):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrConfiguration):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondError writes the mapped status. Internal failures are logged and
// replaced by fallback so infrastructure details stay out of responses.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// badRequest reports a binding or parsing failure.
func badRequest(c *gin.Context, what string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + what + ": " + err.Error()})
}

// tenant returns the organization and actor set by middleware.TenantContext.
func tenant(c *gin.Context) (organizationID, actorID string, ok bool) {
	organizationID, ok = middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: middleware.OrganizationHeader + " header required"})
		return "", "", false
	}
	actorID, ok = middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: middleware.ActorHeader + " header required"})
		return "", "", false
	}
	return organizationID, actorID, true
}
