package model

import (
	"strings"
	"time"
	"unicode"
)

// MaxPlayerNameLength bounds the length of a player name
const MaxPlayerNameLength = 32

// PlayerName uniquely identifies a player across the system
type PlayerName string

// Validate checks that a name is non-empty, trimmed and within length limits.
// Names appear as a URL path segment, so '/' and control characters are rejected.
func (n PlayerName) Validate() error {
	s := string(n)
	if s == "" || strings.TrimSpace(s) != s || len(s) > MaxPlayerNameLength {
		return ErrInvalidPlayerName
	}
	if strings.IndexFunc(s, func(r rune) bool { return r == '/' || unicode.IsControl(r) }) >= 0 {
		return ErrInvalidPlayerName
	}
	return nil
}

// Player is a game character together with its inbox
type Player struct {
	Name        PlayerName `json:"name"`
	Inbox       Inbox      `json:"inbox"`
	CreatedAt   time.Time  `json:"created_at"`
	LastSavedAt time.Time  `json:"last_saved_at"`

	// online is runtime state owned by the live registry, never persisted
	online bool
}

// NewPlayer creates an offline player with an empty inbox
func NewPlayer(name PlayerName, now time.Time) *Player {
	return &Player{
		Name:      name,
		Inbox:     NewInbox(),
		CreatedAt: now,
	}
}

// GetInbox returns the player's inbox container
func (p *Player) GetInbox() *Inbox {
	return &p.Inbox
}

// IsOffline reports whether the player is not held by the live registry
func (p *Player) IsOffline() bool {
	return !p.online
}

// SetOnline marks the player as online or offline
func (p *Player) SetOnline(online bool) {
	p.online = online
}

// Clone returns a deep copy of the player, including the online flag
func (p *Player) Clone() *Player {
	c := *p
	c.Inbox = p.Inbox.Clone()
	return &c
}

// CopyFrom overwrites p with a deep copy of src.
// The online flag of src is not copied; p is left offline.
func (p *Player) CopyFrom(src *Player) {
	*p = *src
	p.Inbox = src.Inbox.Clone()
	p.online = false
}
