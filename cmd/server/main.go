package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/inboxd/internal/api"
	"github.com/mcoot/inboxd/internal/config"
	"github.com/mcoot/inboxd/internal/factory"
	redisstorage "github.com/mcoot/inboxd/internal/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.PoolSize = cfg.RedisPoolSize
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	// Load item catalog
	if cfg.ItemCatalogPath != "" {
		n, err := app.ItemService.LoadCatalogFile(context.Background(), cfg.ItemCatalogPath)
		if err != nil {
			logger.Error("could not load item catalog",
				slog.String("path", cfg.ItemCatalogPath),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("item catalog loaded", slog.Int("item_types", n))
	}

	if cfg.AdminKeyHash == "" {
		logger.Warn("ADMIN_KEY_HASH not set, admin API is unauthenticated")
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		PlayerService:   app.PlayerService,
		ItemService:     app.ItemService,
		DeliveryService: app.DeliveryService,
		AdminKeyHash:    cfg.AdminKeyHash,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.HTTPHost
	serverConfig.Port = cfg.HTTPPort
	serverConfig.ShutdownTimeout = cfg.ShutdownTimeout
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	exitCode := 0
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			exitCode = 1
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			exitCode = 1
		}
	}

	// Persist everyone still online
	if err := app.Registry.Shutdown(context.Background()); err != nil {
		logger.Error("failed to save online players", slog.String("error", err.Error()))
		exitCode = 1
	}

	logger.Info("server stopped")
	if exitCode != 0 {
		_ = app.Close()
		os.Exit(exitCode)
	}
}
