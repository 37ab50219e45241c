package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// HTTP server
	HTTPPort string
	APIKey   string

	// Outbound fetching
	RequestTimeout time.Duration

	// Catalog harvesting
	CatalogPageSize int
	CatalogMaxPages int

	// Logging
	LogLevel string

	// Database (persistence is skipped when Host is empty)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTPPort:        "8080",
		RequestTimeout:  20 * time.Second,
		CatalogPageSize: 250,
		CatalogMaxPages: 10,
		LogLevel:        "info",
		DBPort:          "5432",
		DBUser:          "postgres",
		DBName:          "brandscope",
		DBSSLMode:       "disable",
	}
}

// LoadFromEnv loads .env (if present) then overrides config from
// environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("BRANDSCOPE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("BRANDSCOPE_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RequestTimeout = d
		}
	}
	if v := os.Getenv("BRANDSCOPE_CATALOG_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.CatalogPageSize = n
		}
	}
	if v := os.Getenv("BRANDSCOPE_CATALOG_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.CatalogMaxPages = n
		}
	}
	if v := os.Getenv("BRANDSCOPE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("BRANDSCOPE_DB_HOST"); v != "" {
		c.DBHost = v
	}
	if v := os.Getenv("BRANDSCOPE_DB_PORT"); v != "" {
		c.DBPort = v
	}
	if v := os.Getenv("BRANDSCOPE_DB_USER"); v != "" {
		c.DBUser = v
	}
	if v := os.Getenv("BRANDSCOPE_DB_PASSWORD"); v != "" {
		c.DBPassword = v
	}
	if v := os.Getenv("BRANDSCOPE_DB_NAME"); v != "" {
		c.DBName = v
	}
	if v := os.Getenv("BRANDSCOPE_DB_SSLMODE"); v != "" {
		c.DBSSLMode = v
	}
}
