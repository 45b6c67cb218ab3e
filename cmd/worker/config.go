package main

import (
	"log"

	"storefront-backend/internal/shared/utils"
)

// Config holds all configuration for the worker
type Config struct {
	RedisAddr  string
	HealthPort string
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	cfg := &Config{
		RedisAddr:  utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		HealthPort: utils.GetEnvVariable("WORKER_HEALTH_PORT", "9999"),
	}

	log.Printf("[Config] Redis: %s, Health port: %s", cfg.RedisAddr, cfg.HealthPort)

	return cfg
}
