package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/inboxd/internal/dependencies/clock"
	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/storage"
)

// LiveRegistry is the view of the live player registry used for delivery
type LiveRegistry interface {
	Lock(name model.PlayerName) (unlock func())
	Get(name model.PlayerName) (*model.Player, bool)
}

// ItemFactory creates item instances from item-type codes
type ItemFactory interface {
	CreateItem(ctx context.Context, typeID model.ItemTypeID) (*model.Item, error)
}

// Service delivers items into player inboxes
type Service struct {
	storage  storage.Storage
	registry LiveRegistry
	items    ItemFactory
	clock    clock.Clock
	logger   *slog.Logger
}

// New creates a new delivery Service
func New(storage storage.Storage, registry LiveRegistry, items ItemFactory, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		registry: registry,
		items:    items,
		clock:    clock,
		logger:   logger,
	}
}

// AddItemToPlayer creates an item of type itemID and puts it in the
// recipient's inbox.
//
// An online recipient is mutated in place and not saved. An offline
// recipient is loaded into a value local to this call, receives the item
// and is saved once; it is never added to the registry.
//
// An unknown recipient or item type is reported through the returned
// Delivery status with no side effects. A returned error means storage
// failed and nothing was persisted.
func (s *Service) AddItemToPlayer(ctx context.Context, recipient model.PlayerName, itemID model.ItemTypeID) (*model.Delivery, error) {
	result := &model.Delivery{Recipient: recipient, ItemTypeID: itemID}
	logger := s.logger.With(
		slog.String("recipient", string(recipient)),
		slog.Int("item_type", int(itemID)),
	)

	if err := recipient.Validate(); err != nil {
		result.Status = model.DeliveryRecipientNotFound
		logger.Warn("delivery aborted: invalid recipient name")
		return result, nil
	}

	unlock := s.registry.Lock(recipient)
	defer unlock()

	player, online := s.registry.Get(recipient)
	result.WasOnline = online

	if !online {
		// Lives only for this call and is never registered
		var offline model.Player
		if err := s.storage.LoadPlayerByName(ctx, recipient, &offline); err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				result.Status = model.DeliveryRecipientNotFound
				logger.Warn("delivery aborted: recipient not found")
				return result, nil
			}
			return nil, fmt.Errorf("load player %s: %w", recipient, err)
		}
		player = &offline
	}

	item, err := s.items.CreateItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, model.ErrInvalidItemType) {
			result.Status = model.DeliveryItemInvalid
			logger.Warn("delivery aborted: invalid item type")
			return result, nil
		}
		return nil, fmt.Errorf("create item %d: %w", itemID, err)
	}

	if err := player.GetInbox().Insert(*item, model.IndexWherever, model.FlagNoLimit); err != nil {
		return nil, fmt.Errorf("insert item into inbox of %s: %w", recipient, err)
	}

	if player.IsOffline() {
		player.LastSavedAt = s.clock.Now()
		if err := s.storage.SavePlayer(ctx, player); err != nil {
			logger.Error("failed to save offline recipient", slog.String("error", err.Error()))
			return nil, fmt.Errorf("save player %s: %w", recipient, err)
		}
		result.Saved = true
	}

	result.Status = model.DeliveryDelivered
	result.Item = item
	logger.Info("item delivered",
		slog.String("item_id", string(item.ID)),
		slog.Bool("online", online),
	)
	return result, nil
}

// Inbox returns a copy of the items in a player's inbox
func (s *Service) Inbox(ctx context.Context, name model.PlayerName) ([]model.Item, error) {
	unlock := s.registry.Lock(name)
	defer unlock()

	if player, ok := s.registry.Get(name); ok {
		return player.Inbox.Clone().Items, nil
	}

	var offline model.Player
	if err := s.storage.LoadPlayerByName(ctx, name, &offline); err != nil {
		return nil, err
	}
	return offline.Inbox.Items, nil
}
