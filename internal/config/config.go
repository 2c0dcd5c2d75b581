package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Ingest   IngestConfig
	Sync     SyncConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// IngestConfig holds upload and inbox-scan configuration. InboxDir is a
// directory the scheduler sweeps for trade files dropped outside the
// upload endpoint; empty disables the sweep.
type IngestConfig struct {
	MaxUploadBytes int64
	InboxDir       string
	InboxSchedule  string
}

// SyncConfig holds upstream-sync configuration. TokenKey is the base64
// fernet key used to encrypt the upstream API token at rest.
type SyncConfig struct {
	TokenKey     string
	AutoSchedule string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "20971520"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/trades.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Ingest: IngestConfig{
			MaxUploadBytes: maxUpload,
			InboxDir:       getEnv("INGEST_INBOX_DIR", ""),
			InboxSchedule:  getEnv("INGEST_INBOX_SCHEDULE", "@every 5m"),
		},
		Sync: SyncConfig{
			TokenKey:     getEnv("SYNC_TOKEN_KEY", ""),
			AutoSchedule: getEnv("SYNC_SCHEDULE", "@hourly"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
