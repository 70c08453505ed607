package player

import (
	"context"
	"log/slog"

	"github.com/mcoot/inboxd/internal/dependencies/clock"
	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/services/registry"
	"github.com/mcoot/inboxd/internal/storage"
)

// Service manages player accounts and their sessions
type Service struct {
	storage  storage.Storage
	registry *registry.Registry
	clock    clock.Clock
	logger   *slog.Logger
}

// New creates a new player Service
func New(storage storage.Storage, registry *registry.Registry, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		registry: registry,
		clock:    clock,
		logger:   logger,
	}
}

// Create persists a new offline player with an empty inbox
func (s *Service) Create(ctx context.Context, name model.PlayerName) (*model.Player, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}

	unlock := s.registry.Lock(name)
	defer unlock()

	exists, err := s.storage.PlayerExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrPlayerExists
	}

	player := model.NewPlayer(name, s.clock.Now())
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created", slog.String("player", string(name)))
	return player, nil
}

// Get returns the current state of a player: the live copy when online,
// otherwise the stored state
func (s *Service) Get(ctx context.Context, name model.PlayerName) (*model.Player, error) {
	if p, ok := s.registry.Snapshot(name); ok {
		return p, nil
	}

	unlock := s.registry.Lock(name)
	defer unlock()

	// The player may have logged in between the snapshot and the lock
	if p, ok := s.registry.Get(name); ok {
		return p.Clone(), nil
	}

	player := &model.Player{}
	if err := s.storage.LoadPlayerByName(ctx, name, player); err != nil {
		return nil, err
	}
	return player, nil
}

// List returns all known player names
func (s *Service) List(ctx context.Context) ([]model.PlayerName, error) {
	return s.storage.ListPlayers(ctx)
}

// Online returns the names of online players
func (s *Service) Online() []model.PlayerName {
	return s.registry.Online()
}

// Login brings a stored player online
func (s *Service) Login(ctx context.Context, name model.PlayerName) (*model.Player, error) {
	return s.registry.Login(ctx, name)
}

// Logout saves an online player and takes it offline
func (s *Service) Logout(ctx context.Context, name model.PlayerName) error {
	return s.registry.Logout(ctx, name)
}
