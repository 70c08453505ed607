package redis

import (
	"fmt"

	"github.com/mcoot/inboxd/internal/model"
)

// Key prefix for all inbox service data
const keyPrefix = "inboxd"

// playerKey returns the Redis key for a Player
func playerKey(name model.PlayerName) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, name)
}

// playersIndexKey returns the Redis key for the SET of all player names
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// itemTypeKey returns the Redis key for an ItemType
func itemTypeKey(id model.ItemTypeID) string {
	return fmt.Sprintf("%s:item_type:%d", keyPrefix, id)
}

// itemTypesIndexKey returns the Redis key for the SET of all item type IDs
func itemTypesIndexKey() string {
	return fmt.Sprintf("%s:idx:item_types", keyPrefix)
}
