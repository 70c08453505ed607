package request

// CreatePlayerRequest is the request body for creating a player
type CreatePlayerRequest struct {
	Name string `json:"name"`
}

// DeliverItemRequest is the request body for delivering an item to an inbox
type DeliverItemRequest struct {
	ItemID *int `json:"item_id"`
}

// CreateItemTypeRequest is the request body for registering an item type
type CreateItemTypeRequest struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	MaxCount int    `json:"max_count,omitempty"`
}
