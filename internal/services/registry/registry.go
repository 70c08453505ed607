package registry

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sort"
	"sync"

	"github.com/mcoot/inboxd/internal/dependencies/clock"
	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/storage"
)

// lockStripes is the number of name locks shared by all players
const lockStripes = 64

// Registry is the live index of online players, keyed by name.
//
// The registry owns every player it holds. Callers that read or mutate a
// live player, or that load-modify-save an offline one, must hold the
// name lock returned by Lock for the whole operation.
type Registry struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu      sync.RWMutex
	players map[model.PlayerName]*model.Player

	locks [lockStripes]sync.Mutex
}

// New creates an empty registry
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Registry {
	return &Registry{
		storage: storage,
		clock:   clock,
		logger:  logger,
		players: make(map[model.PlayerName]*model.Player),
	}
}

// Lock acquires the lock for name and returns its release function
func (r *Registry) Lock(name model.PlayerName) (unlock func()) {
	m := &r.locks[stripe(name)]
	m.Lock()
	return m.Unlock
}

func stripe(name model.PlayerName) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return h.Sum32() % lockStripes
}

// Get returns the live player for name. The pointer is not owned by the
// caller and is only valid while the caller holds the name lock.
func (r *Registry) Get(name model.PlayerName) (*model.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[name]
	return p, ok
}

// IsOnline reports whether name is in the registry
func (r *Registry) IsOnline(name model.PlayerName) bool {
	_, ok := r.Get(name)
	return ok
}

// Snapshot returns a copy of the live player, safe to use after return
func (r *Registry) Snapshot(name model.PlayerName) (*model.Player, bool) {
	unlock := r.Lock(name)
	defer unlock()
	p, ok := r.Get(name)
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// Online returns the names of all online players, sorted
func (r *Registry) Online() []model.PlayerName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]model.PlayerName, 0, len(r.players))
	for name := range r.players {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Count returns the number of online players
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// Login loads name from storage and brings it online
func (r *Registry) Login(ctx context.Context, name model.PlayerName) (*model.Player, error) {
	unlock := r.Lock(name)
	defer unlock()

	if r.IsOnline(name) {
		return nil, model.ErrPlayerOnline
	}

	player := &model.Player{}
	if err := r.storage.LoadPlayerByName(ctx, name, player); err != nil {
		return nil, err
	}
	player.SetOnline(true)

	r.mu.Lock()
	r.players[name] = player
	r.mu.Unlock()

	r.logger.Info("player logged in", slog.String("player", string(name)))
	return player.Clone(), nil
}

// Logout persists name and removes it from the registry.
// If the save fails the player stays online.
func (r *Registry) Logout(ctx context.Context, name model.PlayerName) error {
	unlock := r.Lock(name)
	defer unlock()

	player, ok := r.Get(name)
	if !ok {
		return model.ErrPlayerOffline
	}

	if err := r.save(ctx, player); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.players, name)
	r.mu.Unlock()
	player.SetOnline(false)

	r.logger.Info("player logged out", slog.String("player", string(name)))
	return nil
}

// Shutdown logs out every online player. All players are attempted;
// the errors of failed saves are joined.
func (r *Registry) Shutdown(ctx context.Context) error {
	var errs []error
	for _, name := range r.Online() {
		if err := r.Logout(ctx, name); err != nil && !errors.Is(err, model.ErrPlayerOffline) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Registry) save(ctx context.Context, player *model.Player) error {
	player.LastSavedAt = r.clock.Now()
	if err := r.storage.SavePlayer(ctx, player); err != nil {
		r.logger.Error("failed to save player",
			slog.String("player", string(player.Name)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("save player %s: %w", player.Name, err)
	}
	return nil
}
