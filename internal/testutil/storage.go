package testutil

import (
	"context"
	"sync"

	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/storage"
)

// CountingStorage wraps a Storage and records player loads and saves.
// Errors can be injected per operation.
type CountingStorage struct {
	storage.Storage

	mu      sync.Mutex
	loads   []model.PlayerName
	saves   []*model.Player
	LoadErr error
	SaveErr error
}

var _ storage.Storage = (*CountingStorage)(nil)

// NewCountingStorage wraps inner
func NewCountingStorage(inner storage.Storage) *CountingStorage {
	return &CountingStorage{Storage: inner}
}

// LoadPlayerByName records the load, then delegates unless LoadErr is set
func (c *CountingStorage) LoadPlayerByName(ctx context.Context, name model.PlayerName, dst *model.Player) error {
	c.mu.Lock()
	c.loads = append(c.loads, name)
	err := c.LoadErr
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.Storage.LoadPlayerByName(ctx, name, dst)
}

// SavePlayer records a snapshot of the saved state, then delegates unless SaveErr is set
func (c *CountingStorage) SavePlayer(ctx context.Context, player *model.Player) error {
	c.mu.Lock()
	c.saves = append(c.saves, player.Clone())
	err := c.SaveErr
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.Storage.SavePlayer(ctx, player)
}

// Loads returns the names passed to LoadPlayerByName, in call order
func (c *CountingStorage) Loads() []model.PlayerName {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.PlayerName(nil), c.loads...)
}

// Saves returns snapshots of every player passed to SavePlayer, in call order
func (c *CountingStorage) Saves() []*model.Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*model.Player(nil), c.saves...)
}

// Reset clears recorded calls and injected errors
func (c *CountingStorage) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loads = nil
	c.saves = nil
	c.LoadErr = nil
	c.SaveErr = nil
}
