package factory

import (
	"context"
	"time"

	"github.com/mcoot/inboxd/internal/dependencies/mocks"
	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/storage/memory"
	"github.com/mcoot/inboxd/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDs
	// Counting wraps the memory storage used by every service
	Counting *testutil.CountingStorage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := testutil.NewCountingStorage(memory.New())
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDs()

	app := newWithDependencies(store, mockClock, mockIDs, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDs:   mockIDs,
		Counting:  store,
	}
}

// LoadTestCatalog registers a small item catalog for testing
func (t *TestApp) LoadTestCatalog(ctx context.Context) error {
	catalog := []model.ItemType{
		{ID: 2120, Name: "rope", MaxCount: 1},
		{ID: 2148, Name: "gold coin", MaxCount: 100},
		{ID: 2152, Name: "platinum coin", MaxCount: 100},
		{ID: 2160, Name: "crystal coin", MaxCount: 100},
		{ID: 2400, Name: "magic sword", MaxCount: 1},
	}
	for i := range catalog {
		if err := t.ItemService.RegisterItemType(ctx, &catalog[i]); err != nil {
			return err
		}
	}
	return nil
}
