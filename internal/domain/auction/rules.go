package auction

import (
	"errors"
	"time"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/player"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/team"
)

var (
	ErrAlreadySold        = errors.New("player already sold")
	ErrInvalidIncrement   = errors.New("bid increment must be positive")
	ErrInsufficientBudget = errors.New("team budget below current bid")
)

// NextBid raises the player's standing bid by increment. Bids on a sold
// player are rejected outright so the hammer price can never move after the
// sale.
func NextBid(p player.Player, increment int64) (player.Player, error) {
	if p.Sold() {
		return player.Player{}, ErrAlreadySold
	}
	if increment <= 0 {
		return player.Player{}, ErrInvalidIncrement
	}

	next := p
	next.CurrentBid += increment
	return next, nil
}

// Sell settles the lot: the player is marked sold to the team, the team's
// budget drops by the standing bid and a frozen pick snapshot is appended to
// the roster. Both returned values describe the state after the sale; the
// inputs are untouched. Callers must apply the pair atomically.
func Sell(p player.Player, t team.Team, at time.Time) (player.Player, team.Team, error) {
	if p.Sold() {
		return player.Player{}, team.Team{}, ErrAlreadySold
	}
	if t.Budget < p.CurrentBid {
		return player.Player{}, team.Team{}, ErrInsufficientBudget
	}

	soldPlayer := p
	soldPlayer.SoldTo = t.Name
	soldPlayer.SoldToTeamID = t.ID

	buyer := t
	buyer.Budget -= p.CurrentBid
	buyer.Roster = append(append([]team.Pick(nil), t.Roster...), team.Pick{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Country:    p.Country,
		Role:       string(p.Role),
		Price:      p.CurrentBid,
		SoldAt:     at.UTC(),
	})

	return soldPlayer, buyer, nil
}

// Summarize folds the player pool into the header counters.
func Summarize(players []player.Player) Summary {
	summary := Summary{TotalPlayers: len(players)}
	for _, p := range players {
		if p.Sold() {
			summary.Sold++
			summary.TotalSpent += p.CurrentBid
			continue
		}
		summary.Unsold++
	}
	return summary
}
