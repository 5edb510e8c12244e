package auction

import "time"

// EventType distinguishes entries in the auction audit feed.
type EventType string

const (
	EventTypeBid  EventType = "bid"
	EventTypeSale EventType = "sale"
)

// Event is one accepted auction action. Amount is the resulting bid for bid
// events and the hammer price for sale events. TeamID is only set on sales.
type Event struct {
	ID       string
	Type     EventType
	PlayerID string
	TeamID   string
	Amount   int64
	At       time.Time
}

// Summary mirrors the sold/unsold counters of the auction header.
type Summary struct {
	TotalPlayers int
	Sold         int
	Unsold       int
	TotalSpent   int64
}
