package response

import (
	"time"

	"github.com/mcoot/inboxd/internal/model"
)

// Item represents an item instance in API responses
type Item struct {
	ID        string    `json:"id"`
	TypeID    int       `json:"type_id"`
	Name      string    `json:"name"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemFromModel converts a model.Item to a response Item
func ItemFromModel(i *model.Item) Item {
	return Item{
		ID:        string(i.ID),
		TypeID:    int(i.TypeID),
		Name:      i.Name,
		Count:     i.Count,
		CreatedAt: i.CreatedAt,
	}
}

// ItemsFromModel converts a slice of items
func ItemsFromModel(items []model.Item) []Item {
	result := make([]Item, len(items))
	for i := range items {
		result[i] = ItemFromModel(&items[i])
	}
	return result
}

// Player represents a player in API responses
type Player struct {
	Name       string    `json:"name"`
	Online     bool      `json:"online"`
	InboxCount int       `json:"inbox_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		Name:       string(p.Name),
		Online:     !p.IsOffline(),
		InboxCount: p.Inbox.Len(),
		CreatedAt:  p.CreatedAt,
	}
}

// PlayerList is the response for listing players
type PlayerList struct {
	Players []string `json:"players"`
	Online  []string `json:"online"`
}

// PlayerListFromNames builds a PlayerList
func PlayerListFromNames(all, online []model.PlayerName) PlayerList {
	return PlayerList{
		Players: namesToStrings(all),
		Online:  namesToStrings(online),
	}
}

func namesToStrings(names []model.PlayerName) []string {
	result := make([]string, len(names))
	for i, n := range names {
		result[i] = string(n)
	}
	return result
}

// Inbox is the response for reading a player's inbox
type Inbox struct {
	Player string `json:"player"`
	Items  []Item `json:"items"`
}

// Delivery is the response for a successful item delivery
type Delivery struct {
	Status    string `json:"status"`
	Recipient string `json:"recipient"`
	Item      Item   `json:"item"`
	Online    bool   `json:"online"`
	Saved     bool   `json:"saved"`
}

// DeliveryFromModel converts a delivered model.Delivery
func DeliveryFromModel(d *model.Delivery) Delivery {
	resp := Delivery{
		Status:    string(d.Status),
		Recipient: string(d.Recipient),
		Online:    d.WasOnline,
		Saved:     d.Saved,
	}
	if d.Item != nil {
		resp.Item = ItemFromModel(d.Item)
	}
	return resp
}

// ItemType represents a catalog entry
type ItemType struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	MaxCount int    `json:"max_count"`
}

// ItemTypeFromModel converts a model.ItemType
func ItemTypeFromModel(t *model.ItemType) ItemType {
	return ItemType{
		ID:       int(t.ID),
		Name:     t.Name,
		MaxCount: t.MaxCount,
	}
}

// ItemTypeList is the response for listing the item catalog
type ItemTypeList struct {
	Items []ItemType `json:"items"`
}
