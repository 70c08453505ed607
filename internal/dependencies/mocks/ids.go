package mocks

import (
	"fmt"
	"sync"

	"github.com/mcoot/inboxd/internal/dependencies/ids"
	"github.com/mcoot/inboxd/internal/model"
)

// MockIDs is a deterministic Generator for testing.
// Queued IDs are returned first, then "item-1", "item-2", ...
type MockIDs struct {
	mu     sync.Mutex
	queued []model.ItemID
	next   int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// NewItemID returns the next queued ID, or a sequential one
func (g *MockIDs) NewItemID() model.ItemID {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.queued) > 0 {
		id := g.queued[0]
		g.queued = g.queued[1:]
		return id
	}
	g.next++
	return model.ItemID(fmt.Sprintf("item-%d", g.next))
}

// Queue adds IDs to be returned before sequential ones
func (g *MockIDs) Queue(values ...model.ItemID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.queued = append(g.queued, values...)
}
