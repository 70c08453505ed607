package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/inboxd/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndLoadPlayer() {
	player := model.NewPlayer("Alice", time.Now())
	_ = player.GetInbox().Insert(model.Item{ID: "item-1", TypeID: 1}, model.IndexWherever, 0)

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	var loaded model.Player
	err = s.storage.LoadPlayerByName(s.ctx, "Alice", &loaded)
	s.Require().NoError(err)
	s.Equal(player.Name, loaded.Name)
	s.Require().Len(loaded.Inbox.Items, 1)
	s.Equal(model.ItemID("item-1"), loaded.Inbox.Items[0].ID)
}

func (s *StorageSuite) TestLoadPlayerNotFound() {
	var loaded model.Player
	err := s.storage.LoadPlayerByName(s.ctx, "nobody", &loaded)
	s.ErrorIs(err, model.ErrPlayerNotFound)
	s.Empty(loaded.Name)
}

func (s *StorageSuite) TestLoadedPlayerIsOffline() {
	player := model.NewPlayer("Alice", time.Now())
	player.SetOnline(true)
	_ = s.storage.SavePlayer(s.ctx, player)

	var loaded model.Player
	s.Require().NoError(s.storage.LoadPlayerByName(s.ctx, "Alice", &loaded))
	s.True(loaded.IsOffline())
}

func (s *StorageSuite) TestSavedPlayerIsNotRetained() {
	player := model.NewPlayer("Alice", time.Now())
	_ = s.storage.SavePlayer(s.ctx, player)

	// Mutating the caller's copy after save must not change stored state
	_ = player.GetInbox().Insert(model.Item{ID: "late"}, model.IndexWherever, 0)

	var loaded model.Player
	s.Require().NoError(s.storage.LoadPlayerByName(s.ctx, "Alice", &loaded))
	s.Empty(loaded.Inbox.Items)
}

func (s *StorageSuite) TestLoadedPlayerIsNotAliased() {
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("Alice", time.Now()))

	var first model.Player
	s.Require().NoError(s.storage.LoadPlayerByName(s.ctx, "Alice", &first))
	_ = first.GetInbox().Insert(model.Item{ID: "x"}, model.IndexWherever, 0)

	var second model.Player
	s.Require().NoError(s.storage.LoadPlayerByName(s.ctx, "Alice", &second))
	s.Empty(second.Inbox.Items)
}

func (s *StorageSuite) TestPlayerExistsAndDelete() {
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("Alice", time.Now()))

	exists, err := s.storage.PlayerExists(s.ctx, "Alice")
	s.Require().NoError(err)
	s.True(exists)

	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "Alice"))

	exists, err = s.storage.PlayerExists(s.ctx, "Alice")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StorageSuite) TestListPlayersSorted() {
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("Carol", time.Now()))
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("Alice", time.Now()))
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("Bob", time.Now()))

	names, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.PlayerName{"Alice", "Bob", "Carol"}, names)
}

// Item catalog tests

func (s *StorageSuite) TestSaveAndGetItemType() {
	err := s.storage.SaveItemType(s.ctx, &model.ItemType{ID: 2148, Name: "gold coin", MaxCount: 100})
	s.Require().NoError(err)

	itemType, err := s.storage.GetItemType(s.ctx, 2148)
	s.Require().NoError(err)
	s.Equal("gold coin", itemType.Name)
	s.Equal(100, itemType.MaxCount)
}

func (s *StorageSuite) TestGetItemTypeNotFound() {
	_, err := s.storage.GetItemType(s.ctx, 9999)
	s.ErrorIs(err, model.ErrItemTypeNotFound)
}

func (s *StorageSuite) TestListItemTypesSorted() {
	_ = s.storage.SaveItemType(s.ctx, &model.ItemType{ID: 3, Name: "c", MaxCount: 1})
	_ = s.storage.SaveItemType(s.ctx, &model.ItemType{ID: 1, Name: "a", MaxCount: 1})

	types, err := s.storage.ListItemTypes(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(types, 2)
	s.Equal(model.ItemTypeID(1), types[0].ID)
	s.Equal(model.ItemTypeID(3), types[1].ID)
}
