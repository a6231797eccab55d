package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/erp_accounting_core/internal/core/services"
	"github.com/SscSPs/erp_accounting_core/internal/handlers"
	"github.com/SscSPs/erp_accounting_core/internal/middleware"
	"github.com/SscSPs/erp_accounting_core/internal/platform/config"
	"github.com/SscSPs/erp_accounting_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/erp_accounting_core/pkg/database"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title ERP Accounting Core API
// @version 1.0
// @description Double-entry journal, VAT registers and statutory exports for Bulgarian organizations.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey OrganizationID
// @in header
// @name X-Organization-ID
// @description UUID of the organization every request is scoped to.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// --- Run Database Migrations ---
	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	applied, err := runMigrations(cfg)
	if err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies every pending "up" migration through a short-lived
// database/sql connection. It reports whether anything was applied.
func runMigrations(cfg *config.Config) (bool, error) {
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return false, fmt.Errorf("open migration connection: %w", err)
	}
	defer migrationDB.Close()

	if cfg.EnableDBCheck {
		if err := migrationDB.Ping(); err != nil {
			return false, fmt.Errorf("ping database for migrations: %w", err)
		}
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return false, fmt.Errorf("create postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return false, fmt.Errorf("create migrate instance: %w", err)
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return false, upErr
	}
	if sourceErr != nil {
		return false, fmt.Errorf("migration source: %w", sourceErr)
	}
	if dbErr != nil {
		return false, fmt.Errorf("migration database: %w", dbErr)
	}
	return upErr == nil, nil
}
