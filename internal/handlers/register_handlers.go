package handlers

import (
	"log/slog"

	"github.com/SscSPs/erp_accounting_core/cmd/docs"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/dto"
	"github.com/SscSPs/erp_accounting_core/internal/middleware"
	"github.com/SscSPs/erp_accounting_core/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	if err := dto.RegisterValidators(); err != nil {
		slog.Error("Failed to register request validators", slog.String("error", err.Error()))
	}

	r.Use(cors.New(corsConfig(cfg)))

	// Add health check route
	r.GET("/health", getHealth)

	// Setup API v1 routes behind the tenant and rate limit middleware
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	c.AllowHeaders = append(c.AllowHeaders, middleware.OrganizationHeader, middleware.ActorHeader, "X-Request-ID")
	c.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	return c
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	ipLimiter := limiter.New(memory.NewStore(), cfg.RateLimit)
	v1 := r.Group("/api/v1", middleware.RateLimit(ipLimiter), middleware.TenantContext())

	// Delegate route registration to specific handlers, passing required services
	registerAccountRoutes(v1, service.Account)
	registerJournalRoutes(v1, service.Journal)
	registerOpeningBalanceRoutes(v1, service.OpeningBalance)
	registerNumberingRoutes(v1, service.Numbering)
	registerVatRoutes(v1, service.Vat)
	registerReportingRoutes(v1, service.Reporting)
	registerExportRoutes(v1, service.Export)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
