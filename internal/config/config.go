package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config carries the process configuration, loaded once at startup from the
// environment (a .env file is honored when present).
type Config struct {
	Environment string
	HTTPAddr    string

	Database Database

	LogLevel     string
	OTLPEndpoint string
	OTLPProtocol string

	RateLimitPerMinute int
	Timezone           string
}

type Database struct {
	Driver string // "postgres" or "sqlite"
	DSN    string
}

// IsProduction reports whether the process runs with production settings.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Location resolves the configured reporting timezone, falling back to the
// system local zone.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Load reads configuration from the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Environment: getEnv("APP_ENV", "development"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		Database: Database{
			Driver: getEnv("DB_DRIVER", "sqlite"),
			DSN:    getEnv("DB_DSN", "file:backoffice.db?cache=shared"),
		},
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		OTLPEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTLPProtocol:       getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
		RateLimitPerMinute: atoiOrDefault(getEnv("RATE_LIMIT_PER_MINUTE", "300"), 300),
		Timezone:           getEnv("APP_TIMEZONE", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func atoiOrDefault(s string, def int) int {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil || i <= 0 {
		return def
	}
	return i
}

// Module provides the loaded Config to the fx graph.
var Module = fx.Module("config",
	fx.Provide(Load),
)
