package model

import "time"

// ItemTypeID is the item-type code used by the item catalog
type ItemTypeID uint16

// ItemID uniquely identifies a single item instance
type ItemID string

// ItemType is a catalog entry describing a kind of item
type ItemType struct {
	ID       ItemTypeID `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	MaxCount int        `json:"max_count" yaml:"max_count"` // stack limit, 1 for non-stackable
}

// Validate checks that the item type can be used to create items
func (t *ItemType) Validate() error {
	if t.ID == 0 || t.Name == "" || t.MaxCount < 1 {
		return ErrInvalidItemType
	}
	return nil
}

// Item is one instance of an item type
type Item struct {
	ID        ItemID     `json:"id"`
	TypeID    ItemTypeID `json:"type_id"`
	Name      string     `json:"name"`
	Count     int        `json:"count"`
	CreatedAt time.Time  `json:"created_at"`
}
