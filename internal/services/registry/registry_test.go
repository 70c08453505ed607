package registry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/mcoot/inboxd/internal/dependencies/mocks"
	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/storage/memory"
	"github.com/mcoot/inboxd/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type RegistrySuite struct {
	suite.Suite
	storage  *testutil.CountingStorage
	clock    *mocks.MockClock
	registry *Registry
	ctx      context.Context
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.storage = testutil.NewCountingStorage(memory.New())
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.registry = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()

	s.Require().NoError(s.storage.SavePlayer(s.ctx, model.NewPlayer("Alice", s.clock.Now())))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, model.NewPlayer("Bob", s.clock.Now())))
	s.storage.Reset()
}

// Login tests

func (s *RegistrySuite) TestLoginBringsPlayerOnline() {
	player, err := s.registry.Login(s.ctx, "Alice")
	s.Require().NoError(err)
	s.False(player.IsOffline())

	live, ok := s.registry.Get("Alice")
	s.Require().True(ok)
	s.False(live.IsOffline())
	s.True(s.registry.IsOnline("Alice"))
	s.Equal(1, s.registry.Count())
}

func (s *RegistrySuite) TestLoginReturnsCopy() {
	player, err := s.registry.Login(s.ctx, "Alice")
	s.Require().NoError(err)

	live, _ := s.registry.Get("Alice")
	s.NotSame(live, player)
}

func (s *RegistrySuite) TestLoginUnknownPlayer() {
	_, err := s.registry.Login(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
	s.Equal(0, s.registry.Count())
}

func (s *RegistrySuite) TestLoginTwice() {
	_, err := s.registry.Login(s.ctx, "Alice")
	s.Require().NoError(err)

	_, err = s.registry.Login(s.ctx, "Alice")
	s.ErrorIs(err, model.ErrPlayerOnline)
}

// Logout tests

func (s *RegistrySuite) TestLogoutSavesAndRemoves() {
	_, _ = s.registry.Login(s.ctx, "Alice")
	live, _ := s.registry.Get("Alice")
	_ = live.GetInbox().Insert(model.Item{ID: "item-1"}, model.IndexWherever, model.FlagNoLimit)
	s.clock.Advance(time.Hour)

	err := s.registry.Logout(s.ctx, "Alice")
	s.Require().NoError(err)

	s.False(s.registry.IsOnline("Alice"))
	s.True(live.IsOffline())

	saves := s.storage.Saves()
	s.Require().Len(saves, 1)
	s.Equal(s.clock.Now(), saves[0].LastSavedAt)

	var stored model.Player
	s.Require().NoError(s.storage.LoadPlayerByName(s.ctx, "Alice", &stored))
	s.Require().Len(stored.Inbox.Items, 1)
}

func (s *RegistrySuite) TestLogoutOffline() {
	err := s.registry.Logout(s.ctx, "Alice")
	s.ErrorIs(err, model.ErrPlayerOffline)
	s.Empty(s.storage.Saves())
}

func (s *RegistrySuite) TestLogoutSaveFailureKeepsPlayerOnline() {
	_, _ = s.registry.Login(s.ctx, "Alice")
	s.storage.SaveErr = errors.New("disk on fire")

	err := s.registry.Logout(s.ctx, "Alice")
	s.Error(err)
	s.True(s.registry.IsOnline("Alice"))
}

// Snapshot / listing tests

func (s *RegistrySuite) TestSnapshotIsIndependent() {
	_, _ = s.registry.Login(s.ctx, "Alice")

	snap, ok := s.registry.Snapshot("Alice")
	s.Require().True(ok)
	_ = snap.GetInbox().Insert(model.Item{ID: "x"}, model.IndexWherever, 0)

	live, _ := s.registry.Get("Alice")
	s.Equal(0, live.GetInbox().Len())

	_, ok = s.registry.Snapshot("Bob")
	s.False(ok)
}

func (s *RegistrySuite) TestOnlineSorted() {
	_, _ = s.registry.Login(s.ctx, "Bob")
	_, _ = s.registry.Login(s.ctx, "Alice")

	s.Equal([]model.PlayerName{"Alice", "Bob"}, s.registry.Online())
}

func (s *RegistrySuite) TestShutdownSavesEveryone() {
	_, _ = s.registry.Login(s.ctx, "Alice")
	_, _ = s.registry.Login(s.ctx, "Bob")

	err := s.registry.Shutdown(s.ctx)
	s.Require().NoError(err)

	s.Equal(0, s.registry.Count())
	s.Len(s.storage.Saves(), 2)
}

func (s *RegistrySuite) TestShutdownJoinsErrors() {
	_, _ = s.registry.Login(s.ctx, "Alice")
	_, _ = s.registry.Login(s.ctx, "Bob")
	s.storage.SaveErr = errors.New("unavailable")

	err := s.registry.Shutdown(s.ctx)
	s.Error(err)
	s.Len(s.storage.Saves(), 2)
	s.Equal(2, s.registry.Count())
}

// Locking tests

func (s *RegistrySuite) TestLockSerializesSameName() {
	_, _ = s.registry.Login(s.ctx, "Alice")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.registry.Lock("Alice")
			defer unlock()
			live, _ := s.registry.Get("Alice")
			_ = live.GetInbox().Insert(model.Item{}, model.IndexWherever, model.FlagNoLimit)
		}()
	}
	wg.Wait()

	snap, _ := s.registry.Snapshot("Alice")
	s.Equal(50, snap.GetInbox().Len())
}
