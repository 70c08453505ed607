package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/inboxd/internal/api/apierr"
	"github.com/mcoot/inboxd/internal/api/handler"
	"github.com/mcoot/inboxd/internal/api/middleware"
	"github.com/mcoot/inboxd/internal/services/delivery"
	"github.com/mcoot/inboxd/internal/services/items"
	"github.com/mcoot/inboxd/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	PlayerService   *player.Service
	ItemService     *items.Service
	DeliveryService *delivery.Service
	// AdminKeyHash is the bcrypt hash of the admin key; empty disables auth
	AdminKeyHash string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	inboxHandler := handler.NewInboxHandler(cfg.DeliveryService)
	itemHandler := handler.NewItemHandler(cfg.ItemService)

	// Unmatched routes get a JSON error like every other API failure
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	// API subrouter with common middleware. Logging runs first so the
	// request ID is in the context when Recovery logs a panic.
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.Recovery(cfg.Logger))

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Everything else requires the admin key
	admin := api.NewRoute().Subrouter()
	admin.Use(middleware.AdminKey(cfg.AdminKeyHash))

	// Player routes
	admin.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/players/{name}", playerHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/players/{name}/session", playerHandler.Login).Methods(http.MethodPost)
	admin.HandleFunc("/players/{name}/session", playerHandler.Logout).Methods(http.MethodDelete)

	// Inbox routes
	admin.HandleFunc("/players/{name}/inbox", inboxHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/players/{name}/inbox", inboxHandler.Deliver).Methods(http.MethodPost)

	// Item catalog routes
	admin.HandleFunc("/items", itemHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/items", itemHandler.Create).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
