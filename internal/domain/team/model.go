package team

import (
	"fmt"
	"time"
)

// Pick is a frozen snapshot of a player at the moment of sale. Price is the
// hammer price, copied so later inspection of the roster is unaffected by
// anything that happens to the player record.
type Pick struct {
	PlayerID   string
	PlayerName string
	Country    string
	Role       string
	Price      int64
	SoldAt     time.Time
}

// Team is a franchise participating in the auction. Budget starts at the
// seeded cap and drops by exactly the hammer price per acquisition, so
// Budget + sum(Roster prices) equals the initial budget at all times.
type Team struct {
	ID     string
	Name   string
	Short  string
	Color  string
	Budget int64
	Roster []Pick
}

func (t Team) Spent() int64 {
	var total int64
	for _, pick := range t.Roster {
		total += pick.Price
	}
	return total
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Short == "" {
		return fmt.Errorf("team short name is required")
	}
	if t.Budget < 0 {
		return fmt.Errorf("team budget cannot be negative")
	}

	return nil
}
