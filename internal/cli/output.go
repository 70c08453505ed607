package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case PlayerList:
		o.printPlayerList(v)
	case Inbox:
		o.printInbox(v)
	case Delivery:
		o.printDelivery(v)
	case ItemTypeList:
		o.printItemTypeList(v)
	case ItemType:
		o.printItemType(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	Name       string    `json:"name"`
	Online     bool      `json:"online"`
	InboxCount int       `json:"inbox_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// PlayerList response type
type PlayerList struct {
	Players []string `json:"players"`
	Online  []string `json:"online"`
}

// Item response type
type Item struct {
	ID        string    `json:"id"`
	TypeID    int       `json:"type_id"`
	Name      string    `json:"name"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// Inbox response type
type Inbox struct {
	Player string `json:"player"`
	Items  []Item `json:"items"`
}

// Delivery response type
type Delivery struct {
	Status    string `json:"status"`
	Recipient string `json:"recipient"`
	Item      Item   `json:"item"`
	Online    bool   `json:"online"`
	Saved     bool   `json:"saved"`
}

// ItemType response type
type ItemType struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	MaxCount int    `json:"max_count"`
}

// ItemTypeList response type
type ItemTypeList struct {
	Items []ItemType `json:"items"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	status := "offline"
	if p.Online {
		status = "online"
	}
	_, _ = fmt.Fprintf(o.w, "Player: %s (%s)\n", p.Name, status)
	_, _ = fmt.Fprintf(o.w, "Inbox: %d item(s)\n", p.InboxCount)
	_, _ = fmt.Fprintf(o.w, "Created: %s\n", p.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printPlayerList(l PlayerList) {
	online := make(map[string]bool, len(l.Online))
	for _, n := range l.Online {
		online[n] = true
	}
	_, _ = fmt.Fprintf(o.w, "Players (%d, %d online):\n", len(l.Players), len(l.Online))
	for _, n := range l.Players {
		marker := ""
		if online[n] {
			marker = " [online]"
		}
		_, _ = fmt.Fprintf(o.w, "  - %s%s\n", n, marker)
	}
}

func (o *Output) printInbox(in Inbox) {
	_, _ = fmt.Fprintf(o.w, "Inbox of %s (%d):\n", in.Player, len(in.Items))
	for _, it := range in.Items {
		o.printItemLine(it)
	}
}

func (o *Output) printItemLine(it Item) {
	name := it.Name
	if it.Count > 1 {
		name = fmt.Sprintf("%dx %s", it.Count, it.Name)
	}
	_, _ = fmt.Fprintf(o.w, "  - %s [%d] %s\n", name, it.TypeID, it.ID)
}

func (o *Output) printDelivery(d Delivery) {
	where := "offline, saved"
	if d.Online {
		where = "online"
	}
	_, _ = fmt.Fprintf(o.w, "Delivered to %s (%s):\n", d.Recipient, where)
	o.printItemLine(d.Item)
}

func (o *Output) printItemTypeList(l ItemTypeList) {
	_, _ = fmt.Fprintf(o.w, "Item types (%d):\n", len(l.Items))
	for _, t := range l.Items {
		_, _ = fmt.Fprintf(o.w, "  %5d  %-24s max %d\n", t.ID, t.Name, t.MaxCount)
	}
}

func (o *Output) printItemType(t ItemType) {
	_, _ = fmt.Fprintf(o.w, "Item type %d: %s (max %d)\n", t.ID, strings.TrimSpace(t.Name), t.MaxCount)
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
