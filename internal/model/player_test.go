package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerNameValidate(t *testing.T) {
	assert.NoError(t, PlayerName("Alice").Validate())
	assert.ErrorIs(t, PlayerName("").Validate(), ErrInvalidPlayerName)
	assert.ErrorIs(t, PlayerName(" Alice").Validate(), ErrInvalidPlayerName)
	assert.ErrorIs(t, PlayerName(strings.Repeat("a", MaxPlayerNameLength+1)).Validate(), ErrInvalidPlayerName)
}

func TestPlayerNameRejectsPathAndControlCharacters(t *testing.T) {
	for _, name := range []PlayerName{"a/b", "/", "Al\x00ice", "Al\nice", "tab\there"} {
		assert.ErrorIs(t, name.Validate(), ErrInvalidPlayerName, "name %q", name)
	}
	assert.NoError(t, PlayerName("Sir Knight").Validate())
	assert.NoError(t, PlayerName("Élodie").Validate())
}

func TestNewPlayerIsOffline(t *testing.T) {
	p := NewPlayer("Alice", time.Now())

	assert.True(t, p.IsOffline())
	assert.Equal(t, 0, p.GetInbox().Len())
	assert.Equal(t, DefaultInboxCapacity, p.GetInbox().Capacity)
}

func TestPlayerGetInboxIsMutable(t *testing.T) {
	p := NewPlayer("Alice", time.Now())

	require.NoError(t, p.GetInbox().Insert(Item{ID: "a"}, IndexWherever, 0))
	assert.Equal(t, 1, p.Inbox.Len())
}

func TestPlayerCopyFromLeavesOffline(t *testing.T) {
	src := NewPlayer("Alice", time.Now())
	src.SetOnline(true)
	_ = src.GetInbox().Insert(Item{ID: "a"}, IndexWherever, 0)

	var dst Player
	dst.CopyFrom(src)

	assert.Equal(t, src.Name, dst.Name)
	assert.True(t, dst.IsOffline())

	dst.Inbox.Items[0].ID = "changed"
	assert.Equal(t, ItemID("a"), src.Inbox.Items[0].ID)
}

func TestPlayerCloneKeepsOnlineFlag(t *testing.T) {
	p := NewPlayer("Alice", time.Now())
	p.SetOnline(true)

	assert.False(t, p.Clone().IsOffline())
}
