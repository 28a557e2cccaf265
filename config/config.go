package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Listing cache configuration
	CacheEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// MaxPageSize caps the limit parameter of the unfiltered listing.
	MaxPageSize int
}

// Load builds the configuration from environment variables, falling back
// to Docker secrets for passwords and to development defaults elsewhere.
func Load() (*Config, error) {
	cfg := &Config{
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort: getEnv("SERVER_PORT", "5000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getSecret("DB_PASSWORD", "db_password"),
		DBName:     getEnv("DB_NAME", "recipes"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		CacheEnabled:  getEnv("CACHE_ENABLED", "false") == "true",
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getSecret("REDIS_PASSWORD", "redis_password"),
		RedisDB:       0,
		RedisURL:      getEnv("REDIS_URL", ""),
	}

	raw := getEnv("MAX_PAGE_SIZE", "100")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid MAX_PAGE_SIZE %q", raw)
	}
	cfg.MaxPageSize = n

	if IsProduction() && cfg.DBPassword == "" {
		return nil, fmt.Errorf("db_password secret is required in production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getSecret prefers the environment variable and falls back to a Docker
// secret file of the given name.
func getSecret(envKey, secretName string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return readSecret(secretName)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
