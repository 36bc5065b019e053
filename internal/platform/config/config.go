package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	APIPrefix      string
	MigrationsPath string

	// Reporting
	LedgerDir       string
	ReportOutputDir string
	ReportWorkers   int
	ReportQueueSize int
	ReportRateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("API_PREFIX", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("LEDGER_DIR", "tmp")
	viper.SetDefault("REPORT_OUTPUT_DIR", "out")
	viper.SetDefault("REPORT_WORKERS", 3)
	viper.SetDefault("REPORT_QUEUE_SIZE", 64)
	viper.SetDefault("REPORT_RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Environment variables override defaults and .env values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.APIPrefix = strings.TrimRight(viper.GetString("API_PREFIX"), "/")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.LedgerDir = viper.GetString("LEDGER_DIR")
	cfg.ReportOutputDir = viper.GetString("REPORT_OUTPUT_DIR")

	cfg.ReportWorkers = viper.GetInt("REPORT_WORKERS")
	if cfg.ReportWorkers <= 0 {
		log.Printf("Warning: Invalid value for REPORT_WORKERS (%d). Defaulting to 3.\n", cfg.ReportWorkers)
		cfg.ReportWorkers = 3
	}

	cfg.ReportQueueSize = viper.GetInt("REPORT_QUEUE_SIZE")
	if cfg.ReportQueueSize < 0 {
		log.Printf("Warning: Invalid value for REPORT_QUEUE_SIZE (%d). Defaulting to 64.\n", cfg.ReportQueueSize)
		cfg.ReportQueueSize = 64
	}

	cfg.ReportRateLimit = viper.GetString("REPORT_RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
