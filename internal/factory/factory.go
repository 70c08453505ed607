package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/inboxd/internal/dependencies/clock"
	"github.com/mcoot/inboxd/internal/dependencies/ids"
	"github.com/mcoot/inboxd/internal/services/delivery"
	"github.com/mcoot/inboxd/internal/services/items"
	"github.com/mcoot/inboxd/internal/services/player"
	"github.com/mcoot/inboxd/internal/services/registry"
	"github.com/mcoot/inboxd/internal/storage"
	"github.com/mcoot/inboxd/internal/storage/memory"
	redisstorage "github.com/mcoot/inboxd/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	IDs   ids.Generator

	// Services
	Registry        *registry.Registry
	ItemService     *items.Service
	PlayerService   *player.Service
	DeliveryService *delivery.Service

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closers []io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), ids.New(), logger)
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, idGen ids.Generator, logger *slog.Logger) *App {
	reg := registry.New(store, clk, logger)
	itemService := items.New(store, idGen, clk, logger)
	playerService := player.New(store, reg, clk, logger)
	deliveryService := delivery.New(store, reg, itemService, clk, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		IDs:             idGen,
		Registry:        reg,
		ItemService:     itemService,
		PlayerService:   playerService,
		DeliveryService: deliveryService,
	}
}

// Close releases storage connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
