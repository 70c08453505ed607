package model

// DefaultInboxCapacity is the number of items an inbox holds before
// limited insertions are rejected
const DefaultInboxCapacity = 100

// IndexWherever lets the inbox choose the insert position (the end)
const IndexWherever = -1

// InsertFlags modify how Inbox.Insert treats limits
type InsertFlags uint8

const (
	// FlagNoLimit ignores the inbox capacity
	FlagNoLimit InsertFlags = 1 << iota
)

// Inbox receives items delivered out-of-band, outside trade or pickup
type Inbox struct {
	Items    []Item `json:"items"`
	Capacity int    `json:"capacity"`
}

// NewInbox returns an empty inbox with the default capacity
func NewInbox() Inbox {
	return Inbox{
		Items:    []Item{},
		Capacity: DefaultInboxCapacity,
	}
}

// Len returns the number of items in the inbox
func (b *Inbox) Len() int {
	return len(b.Items)
}

// IsFull reports whether a limited insertion would be rejected
func (b *Inbox) IsFull() bool {
	return b.Capacity > 0 && len(b.Items) >= b.Capacity
}

// Insert stores item at index (or at the end for IndexWherever).
// The inbox owns the stored copy afterwards.
func (b *Inbox) Insert(item Item, index int, flags InsertFlags) error {
	if flags&FlagNoLimit == 0 && b.IsFull() {
		return ErrInboxFull
	}

	if index == IndexWherever {
		b.Items = append(b.Items, item)
		return nil
	}
	if index < 0 || index > len(b.Items) {
		return ErrInvalidInboxIndex
	}

	b.Items = append(b.Items, Item{})
	copy(b.Items[index+1:], b.Items[index:])
	b.Items[index] = item
	return nil
}

// Clone returns a copy of the inbox that shares no storage with b
func (b Inbox) Clone() Inbox {
	items := make([]Item, len(b.Items))
	copy(items, b.Items)
	return Inbox{Items: items, Capacity: b.Capacity}
}
