package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMemory    = "memory"
	StoreDriverFirestore = "firestore"
)

type Config struct {
	Port        int
	AppEnv      string
	LogLevel    slog.Level
	FrontendURL string

	// StoreDriver selects the persistence backend: "firestore" for real
	// deployments, "memory" for local development.
	StoreDriver        string
	FirestoreProjectID string
}

func Load() (*Config, error) {
	// A missing .env file is fine; deployments configure through the
	// environment directly.
	_ = godotenv.Load()

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config := &Config{
		Port:               appPort,
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		StoreDriver:        getEnv("STORE_DRIVER", StoreDriverMemory),
		FirestoreProjectID: getEnv("FIRESTORE_PROJECT_ID", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverMemory:
	case StoreDriverFirestore:
		if c.FirestoreProjectID == "" {
			return fmt.Errorf("FIRESTORE_PROJECT_ID is required when STORE_DRIVER=firestore")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
