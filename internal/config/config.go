package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config chứa toàn bộ application configuration.
// Populated từ environment variables.
type Config struct {
	App      AppConfig
	ShopAPI  ShopAPIConfig
	Redis    RedisConfig
	Session  SessionConfig
	Snapshot SnapshotConfig
}

type AppConfig struct {
	Name           string
	Environment    string // development, staging, production
	Port           string
	Version        string
	AllowedOrigins []string // CORS; empty dùng localhost defaults
}

// ShopAPIConfig points at the remote shop REST API that owns the
// authoritative catalog, cart, checkout and order state.
type ShopAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret     string
	CookieName string
	MaxAge     int // seconds
}

type SnapshotConfig struct {
	Path string // SQLite file holding persisted cart snapshots
	TTL  time.Duration
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "Storefront BFF"),
			Environment:    getEnv("APP_ENV", "development"),
			Port:           getEnv("APP_PORT", "8080"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			AllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),
		},
		ShopAPI: ShopAPIConfig{
			BaseURL: getEnv("SHOP_API_URL", "http://localhost:8000/api"),
			Timeout: time.Duration(getEnvInt("SHOP_API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
			CookieName: getEnv("SESSION_COOKIE_NAME", "storefront_session"),
			MaxAge:     getEnvInt("SESSION_MAX_AGE", 60*60*24*30), // 30 days
		},
		Snapshot: SnapshotConfig{
			Path: getEnv("SNAPSHOT_DB_PATH", "storefront-snapshots.db"),
			TTL:  time.Duration(getEnvInt("SNAPSHOT_TTL_HOURS", 24*30)) * time.Hour,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra critical config
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Session.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("SESSION_SECRET must be set in production")
		}
	}
	if c.ShopAPI.BaseURL == "" {
		return fmt.Errorf("SHOP_API_URL must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
