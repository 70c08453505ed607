package model

// DeliveryStatus is the outcome of an item delivery
type DeliveryStatus string

const (
	DeliveryDelivered         DeliveryStatus = "delivered"
	DeliveryRecipientNotFound DeliveryStatus = "recipient_not_found"
	DeliveryItemInvalid       DeliveryStatus = "item_invalid"
)

// Delivery describes what happened to one AddItemToPlayer call
type Delivery struct {
	Status     DeliveryStatus
	Recipient  PlayerName
	ItemTypeID ItemTypeID
	Item       *Item // nil unless Status is DeliveryDelivered
	WasOnline  bool  // recipient was found in the live registry
	Saved      bool  // a persistence save was issued for the recipient
}

// Delivered reports whether the item reached the recipient's inbox
func (d *Delivery) Delivered() bool {
	return d.Status == DeliveryDelivered
}
