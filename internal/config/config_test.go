package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.StorageType)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.AdminKeyHash)
}

func TestLoadFromEnvironment(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg, err := LoadFrom(map[string]string{
		"HTTP_PORT":         "9090",
		"STORAGE_TYPE":      "redis",
		"REDIS_URL":         "redis://cache:6379/1",
		"ITEM_CATALOG_PATH": "/etc/inboxd/items.yaml",
		"ADMIN_KEY_HASH":    string(hash),
		"LOG_LEVEL":         "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, StorageRedis, cfg.StorageType)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, "/etc/inboxd/items.yaml", cfg.ItemCatalogPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := LoadFrom(map[string]string{"STORAGE_TYPE": "redis"})
	assert.Error(t, err)

	_, err = LoadFrom(map[string]string{"HTTP_PORT": "not-a-number"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{StorageType: StorageMemory, HTTPPort: 8080}
	require.NoError(t, valid.Validate())

	redisNoURL := valid
	redisNoURL.StorageType = StorageRedis
	assert.Error(t, redisNoURL.Validate())

	unknown := valid
	unknown.StorageType = "postgres"
	assert.Error(t, unknown.Validate())

	badPort := valid
	badPort.HTTPPort = 70000
	assert.Error(t, badPort.Validate())

	badHash := valid
	badHash.AdminKeyHash = "plaintext"
	assert.Error(t, badHash.Validate())
}
