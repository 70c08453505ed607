package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/inboxd/internal/dependencies/mocks"
	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/services/registry"
	"github.com/mcoot/inboxd/internal/storage/memory"
	"github.com/mcoot/inboxd/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	registry *registry.Registry
	clock    *mocks.MockClock
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.registry = registry.New(s.storage, s.clock, testutil.NopLogger())
	s.service = New(s.storage, s.registry, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// Create tests

func (s *ServiceSuite) TestCreateSucceeds() {
	player, err := s.service.Create(s.ctx, "Alice")
	s.Require().NoError(err)

	s.Equal(model.PlayerName("Alice"), player.Name)
	s.True(player.IsOffline())
	s.Equal(s.clock.Now(), player.CreatedAt)

	exists, err := s.storage.PlayerExists(s.ctx, "Alice")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *ServiceSuite) TestCreateDuplicate() {
	_, _ = s.service.Create(s.ctx, "Alice")

	_, err := s.service.Create(s.ctx, "Alice")
	s.ErrorIs(err, model.ErrPlayerExists)
}

func (s *ServiceSuite) TestCreateInvalidName() {
	_, err := s.service.Create(s.ctx, "")
	s.ErrorIs(err, model.ErrInvalidPlayerName)
}

// Get tests

func (s *ServiceSuite) TestGetOffline() {
	_, _ = s.service.Create(s.ctx, "Alice")

	player, err := s.service.Get(s.ctx, "Alice")
	s.Require().NoError(err)
	s.True(player.IsOffline())
}

func (s *ServiceSuite) TestGetOnline() {
	_, _ = s.service.Create(s.ctx, "Alice")
	_, err := s.service.Login(s.ctx, "Alice")
	s.Require().NoError(err)

	player, err := s.service.Get(s.ctx, "Alice")
	s.Require().NoError(err)
	s.False(player.IsOffline())
	s.Equal([]model.PlayerName{"Alice"}, s.service.Online())
}

func (s *ServiceSuite) TestGetNotFound() {
	_, err := s.service.Get(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Session tests

func (s *ServiceSuite) TestLoginLogout() {
	_, _ = s.service.Create(s.ctx, "Alice")

	_, err := s.service.Login(s.ctx, "Alice")
	s.Require().NoError(err)
	s.True(s.registry.IsOnline("Alice"))

	s.Require().NoError(s.service.Logout(s.ctx, "Alice"))
	s.False(s.registry.IsOnline("Alice"))
}

func (s *ServiceSuite) TestList() {
	_, _ = s.service.Create(s.ctx, "Bob")
	_, _ = s.service.Create(s.ctx, "Alice")

	names, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.PlayerName{"Alice", "Bob"}, names)
}
