package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Headers set by the upstream gateway after it authenticated the caller.
const (
	OrganizationHeader = "X-Organization-ID"
	ActorHeader        = "X-Actor-ID"
)

// TenantContext creates a Gin middleware handler that reads the tenant
// organization and the acting user from gateway headers.
func TenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		organizationID := strings.TrimSpace(c.GetHeader(OrganizationHeader))
		if organizationID == "" {
			logger.Warn("Organization header missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": OrganizationHeader + " header required"})
			return
		}
		if _, err := uuid.Parse(organizationID); err != nil {
			logger.Warn("Organization header invalid", slog.String("organization_id", organizationID))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": OrganizationHeader + " must be a UUID"})
			return
		}

		actorID := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actorID == "" {
			logger.Warn("Actor header missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ActorHeader + " header required"})
			return
		}

		enrichedLogger := logger.With(
			slog.String("organization_id", organizationID),
			slog.String("actor_id", actorID),
		)

		ctx := WithTenant(c.Request.Context(), organizationID, actorID)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
		c.Set(string(organizationIDKey), organizationID)
		c.Set(string(actorIDKey), actorID)
		c.Set(string(loggerKey), enrichedLogger)

		c.Next()
	}
}
