package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers selectable via STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config holds the runtime configuration, loaded from the environment with
// an optional .env file for development.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// StorageDriver selects the blob store backend.
	StorageDriver string
	RedisURL      string
	DatabaseURL   string
	KeyPrefix     string

	// KafkaBrokers switches the event publisher from the in-process
	// channel to Kafka when non-empty.
	KafkaBrokers []string

	SeedDefaultAccounts bool
}

// LoadConfig reads configuration from the environment. A missing .env file
// is not an error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		LogLevel:            parseLogLevel(getEnv("LOG_LEVEL", "info")),
		StorageDriver:       getEnv("STORAGE_DRIVER", DriverMemory),
		RedisURL:            getEnv("REDIS_URL", ""),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		KeyPrefix:           getEnv("KEY_PREFIX", "studyflow:"),
		SeedDefaultAccounts: getEnv("SEED_DEFAULT_ACCOUNTS", "true") == "true",
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case DriverMemory:
	case DriverRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORAGE_DRIVER=redis")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
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
