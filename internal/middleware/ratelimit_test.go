package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func newLimitedRouter(limit int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: limit})
	r.Use(RateLimit(l))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func ping(r *gin.Engine, org string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if org != "" {
		req.Header.Set(OrganizationHeader, org)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	r := newLimitedRouter(1)

	first := ping(r, "org-a")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := ping(r, "org-a")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRateLimit_SeparateBucketsPerOrganization(t *testing.T) {
	r := newLimitedRouter(1)

	assert.Equal(t, http.StatusOK, ping(r, "org-a").Code)
	assert.Equal(t, http.StatusOK, ping(r, "org-b").Code)
	assert.Equal(t, http.StatusOK, ping(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, ping(r, "org-b").Code)
}
