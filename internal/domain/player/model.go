package player

import "fmt"

// Role represents cricket role categories used during the auction.
type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-Rounder"
	RoleWicketKeeper Role = "Wicket-Keeper"
)

var AllRoles = map[Role]struct{}{
	RoleBatsman:      {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketKeeper: {},
}

// Stats carries career numbers shown on the auction card. Runs, Wickets and
// Average are optional depending on the role; zero means not applicable.
type Stats struct {
	Matches int
	Runs    int
	Wickets int
	Average float64
}

// Player is one lot in the auction pool. CurrentBid starts at BasePrice and
// only rises while the player is unsold. SoldTo stays empty until the hammer
// falls and never changes afterwards.
type Player struct {
	ID           string
	Name         string
	Country      string
	Role         Role
	BasePrice    int64
	CurrentBid   int64
	SoldTo       string
	SoldToTeamID string
	Stats        Stats
}

func (p Player) Sold() bool {
	return p.SoldToTeamID != ""
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	if p.BasePrice <= 0 {
		return fmt.Errorf("player base price must be greater than zero")
	}
	if p.CurrentBid < p.BasePrice {
		return fmt.Errorf("player current bid cannot be below base price")
	}

	return nil
}
