package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort           = "8080"
	defaultMigrationsPath = "file://migrations"
	defaultRateLimit      = "100-M"
	defaultMaxConns       = 10
	defaultSoftwareName   = "ERP Accounting Core"
	defaultSoftwareVer    = "1.0"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	MigrationsPath     string
	RateLimit          limiter.Rate
	CORSAllowedOrigins []string
	DBMaxConns         int32

	// Reported in the SAF-T header.
	SaftSoftwareName    string
	SaftSoftwareVersion string

	// Default output directory of the export CLI.
	ExportDir string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DB_MAX_CONNS", defaultMaxConns)
	viper.SetDefault("SAFT_SOFTWARE_NAME", defaultSoftwareName)
	viper.SetDefault("SAFT_SOFTWARE_VERSION", defaultSoftwareVer)
	viper.SetDefault("EXPORT_DIR", ".")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	rateStr := viper.GetString("RATE_LIMIT")
	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted(defaultRateLimit)
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", rateStr, defaultRateLimit)
	}
	cfg.RateLimit = rate

	maxConns := viper.GetInt("DB_MAX_CONNS")
	if maxConns <= 0 {
		log.Printf("Warning: Invalid value for DB_MAX_CONNS (%d). Defaulting to %d.\n", maxConns, defaultMaxConns)
		maxConns = defaultMaxConns
	}
	cfg.DBMaxConns = int32(maxConns)

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.SaftSoftwareName = viper.GetString("SAFT_SOFTWARE_NAME")
	cfg.SaftSoftwareVersion = viper.GetString("SAFT_SOFTWARE_VERSION")
	cfg.ExportDir = viper.GetString("EXPORT_DIR")

	return cfg, nil
}
