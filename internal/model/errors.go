package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound    = errors.New("player not found")
	ErrPlayerExists      = errors.New("player already exists")
	ErrPlayerOnline      = errors.New("player is already online")
	ErrPlayerOffline     = errors.New("player is not online")
	ErrInvalidPlayerName = errors.New("invalid player name")

	// Item errors
	ErrItemTypeNotFound = errors.New("item type not found")
	ErrInvalidItemType  = errors.New("invalid item type")

	// Inbox errors
	ErrInboxFull         = errors.New("inbox is full")
	ErrInvalidInboxIndex = errors.New("invalid inbox index")
)
