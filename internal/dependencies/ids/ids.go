package ids

import (
	"github.com/google/uuid"

	"github.com/mcoot/inboxd/internal/model"
)

// Generator produces identifiers for new item instances
type Generator interface {
	NewItemID() model.ItemID
}

// UUIDGenerator implements Generator with random (v4) UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewItemID returns a fresh random item ID
func (g *UUIDGenerator) NewItemID() model.ItemID {
	return model.ItemID(uuid.NewString())
}
