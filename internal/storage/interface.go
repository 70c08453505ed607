package storage

import (
	"context"

	"github.com/mcoot/inboxd/internal/model"
)

// Storage is the persistence layer for players and the item catalog.
//
// Player pointers passed in are borrowed: implementations read or populate
// them during the call and never retain them afterwards.
type Storage interface {
	// Player operations
	LoadPlayerByName(ctx context.Context, name model.PlayerName, dst *model.Player) error
	SavePlayer(ctx context.Context, player *model.Player) error
	PlayerExists(ctx context.Context, name model.PlayerName) (bool, error)
	DeletePlayer(ctx context.Context, name model.PlayerName) error
	ListPlayers(ctx context.Context) ([]model.PlayerName, error)

	// Item catalog operations
	SaveItemType(ctx context.Context, itemType *model.ItemType) error
	GetItemType(ctx context.Context, id model.ItemTypeID) (*model.ItemType, error)
	ListItemTypes(ctx context.Context) ([]*model.ItemType, error)
}
