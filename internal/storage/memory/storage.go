package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/storage"
)

// Storage keeps deep copies of everything it is given, so no caller
// ever aliases stored state.
type Storage struct {
	mu sync.RWMutex

	players   map[model.PlayerName]*model.Player
	itemTypes map[model.ItemTypeID]model.ItemType
}

func New() *Storage {
	return &Storage{
		players:   make(map[model.PlayerName]*model.Player),
		itemTypes: make(map[model.ItemTypeID]model.ItemType),
	}
}

var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) LoadPlayerByName(ctx context.Context, name model.PlayerName, dst *model.Player) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[name]
	if !ok {
		return model.ErrPlayerNotFound
	}
	dst.CopyFrom(player)
	return nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	stored := &model.Player{}
	stored.CopyFrom(player)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.Name] = stored
	return nil
}

func (s *Storage) PlayerExists(ctx context.Context, name model.PlayerName) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.players[name]
	return ok, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, name model.PlayerName) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, name)
	return nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]model.PlayerName, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]model.PlayerName, 0, len(s.players))
	for name := range s.players {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names, nil
}

// Item catalog operations

func (s *Storage) SaveItemType(ctx context.Context, itemType *model.ItemType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemTypes[itemType.ID] = *itemType
	return nil
}

func (s *Storage) GetItemType(ctx context.Context, id model.ItemTypeID) (*model.ItemType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	itemType, ok := s.itemTypes[id]
	if !ok {
		return nil, model.ErrItemTypeNotFound
	}
	return &itemType, nil
}

func (s *Storage) ListItemTypes(ctx context.Context) ([]*model.ItemType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.ItemType, 0, len(s.itemTypes))
	for _, itemType := range s.itemTypes {
		it := itemType
		result = append(result, &it)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
