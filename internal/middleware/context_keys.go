package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	organizationIDKey = contextKey("organizationID")
	actorIDKey        = contextKey("actorID")
)

// WithTenant stores the organization and actor IDs in ctx.
func WithTenant(ctx context.Context, organizationID, actorID string) context.Context {
	ctx = context.WithValue(ctx, organizationIDKey, organizationID)
	return context.WithValue(ctx, actorIDKey, actorID)
}

// GetOrganizationIDFromContext retrieves the tenant organization ID set by TenantContext.
// It returns the ID and a boolean indicating if it was found.
func GetOrganizationIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(organizationIDKey)); exists {
		id, ok := v.(string)
		return id, ok && id != ""
	}
	// check in the request context as well
	id, ok := c.Request.Context().Value(organizationIDKey).(string)
	return id, ok && id != ""
}

// GetActorIDFromContext retrieves the acting user ID set by TenantContext.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(actorIDKey)); exists {
		id, ok := v.(string)
		return id, ok && id != ""
	}
	id, ok := c.Request.Context().Value(actorIDKey).(string)
	return id, ok && id != ""
}
