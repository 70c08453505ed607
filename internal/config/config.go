package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config holds server configuration parsed from environment variables
type Config struct {
	// HTTP
	HTTPHost        string        `env:"HTTP_HOST"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Storage
	StorageType   string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL      string `env:"REDIS_URL"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Item catalog loaded at startup (optional)
	ItemCatalogPath string `env:"ITEM_CATALOG_PATH"`

	// bcrypt hash of the admin API key; empty disables admin auth
	AdminKeyHash string `env:"ADMIN_KEY_HASH"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the process environment into a Config
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses the given variables into a Config.
// A nil map reads the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that depend on each other
func (c *Config) Validate() error {
	switch c.StorageType {
	case StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required when STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("STORAGE_TYPE must be %q or %q, got %q", StorageMemory, StorageRedis, c.StorageType)
	}

	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", c.HTTPPort)
	}

	if c.AdminKeyHash != "" {
		if _, err := bcrypt.Cost([]byte(c.AdminKeyHash)); err != nil {
			return fmt.Errorf("ADMIN_KEY_HASH is not a bcrypt hash: %w", err)
		}
	}
	return nil
}
