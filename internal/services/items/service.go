package items

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/inboxd/internal/dependencies/clock"
	"github.com/mcoot/inboxd/internal/dependencies/ids"
	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/storage"
)

// Service is the item factory and catalog manager
type Service struct {
	storage storage.Storage
	ids     ids.Generator
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new item Service
func New(storage storage.Storage, ids ids.Generator, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		ids:     ids,
		clock:   clock,
		logger:  logger,
	}
}

// CreateItem builds a new instance of the given item type.
// Unknown type codes fail with model.ErrInvalidItemType.
func (s *Service) CreateItem(ctx context.Context, typeID model.ItemTypeID) (*model.Item, error) {
	itemType, err := s.storage.GetItemType(ctx, typeID)
	if err != nil {
		if errors.Is(err, model.ErrItemTypeNotFound) {
			return nil, fmt.Errorf("%w: %d", model.ErrInvalidItemType, typeID)
		}
		return nil, err
	}

	return &model.Item{
		ID:        s.ids.NewItemID(),
		TypeID:    itemType.ID,
		Name:      itemType.Name,
		Count:     1,
		CreatedAt: s.clock.Now(),
	}, nil
}

// RegisterItemType adds or replaces a catalog entry
func (s *Service) RegisterItemType(ctx context.Context, itemType *model.ItemType) error {
	if err := itemType.Validate(); err != nil {
		return err
	}
	return s.storage.SaveItemType(ctx, itemType)
}

// GetItemType returns a catalog entry
func (s *Service) GetItemType(ctx context.Context, id model.ItemTypeID) (*model.ItemType, error) {
	return s.storage.GetItemType(ctx, id)
}

// ListItemTypes returns the whole catalog ordered by type ID
func (s *Service) ListItemTypes(ctx context.Context) ([]*model.ItemType, error) {
	return s.storage.ListItemTypes(ctx)
}

// catalogFile is the YAML layout of an item catalog file
type catalogFile struct {
	Items []model.ItemType `yaml:"items"`
}

// LoadCatalog parses a YAML catalog and registers every entry.
// The whole document is validated before anything is stored.
func (s *Service) LoadCatalog(ctx context.Context, data []byte) (int, error) {
	var catalog catalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return 0, fmt.Errorf("parse item catalog: %w", err)
	}

	seen := make(map[model.ItemTypeID]struct{}, len(catalog.Items))
	for i := range catalog.Items {
		it := &catalog.Items[i]
		if it.MaxCount == 0 {
			it.MaxCount = 1
		}
		if err := it.Validate(); err != nil {
			return 0, fmt.Errorf("item catalog entry %d: %w", i, err)
		}
		if _, dup := seen[it.ID]; dup {
			return 0, fmt.Errorf("item catalog entry %d: duplicate id %d", i, it.ID)
		}
		seen[it.ID] = struct{}{}
	}

	for i := range catalog.Items {
		if err := s.storage.SaveItemType(ctx, &catalog.Items[i]); err != nil {
			return i, err
		}
	}

	s.logger.Info("item catalog loaded", slog.Int("count", len(catalog.Items)))
	return len(catalog.Items), nil
}

// LoadCatalogFile reads and loads a YAML catalog from disk
func (s *Service) LoadCatalogFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read item catalog: %w", err)
	}
	return s.LoadCatalog(ctx, data)
}
