package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	RateLimit          string   // ulule formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string // empty allows any origin outside production
	MigrationsPath     string

	// Projection
	MaxProjectionDays int

	// Materialization
	ScheduleLookbackDays int
	MaterializeQueueSize int
	MaterializeWorkers   int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("MAX_PROJECTION_DAYS", 1830)
	v.SetDefault("SCHEDULE_LOOKBACK_DAYS", 1)
	v.SetDefault("MATERIALIZE_QUEUE_SIZE", 100)
	v.SetDefault("MATERIALIZE_WORKERS", 2)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		RateLimit:            v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		MigrationsPath:       v.GetString("MIGRATIONS_PATH"),
		MaxProjectionDays:    v.GetInt("MAX_PROJECTION_DAYS"),
		ScheduleLookbackDays: v.GetInt("SCHEDULE_LOOKBACK_DAYS"),
		MaterializeQueueSize: v.GetInt("MATERIALIZE_QUEUE_SIZE"),
		MaterializeWorkers:   v.GetInt("MATERIALIZE_WORKERS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.MaxProjectionDays <= 0 {
		log.Printf("Warning: Invalid MAX_PROJECTION_DAYS (%d). Defaulting to 1830.\n", cfg.MaxProjectionDays)
		cfg.MaxProjectionDays = 1830
	}
	if cfg.ScheduleLookbackDays <= 0 {
		cfg.ScheduleLookbackDays = 1
	}
	if cfg.MaterializeQueueSize <= 0 {
		cfg.MaterializeQueueSize = 100
	}
	if cfg.MaterializeWorkers <= 0 {
		cfg.MaterializeWorkers = 2
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
