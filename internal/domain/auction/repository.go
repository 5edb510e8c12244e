package auction

import (
	"context"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/player"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/team"
)

// SaleApplier applies a sale transition to a player/team pair atomically.
// A sale moves budget and roster on the team and marks the player sold, so
// both writes must land in one critical section. Partial effects are never
// observable and concurrent double sales lose cleanly.
type SaleApplier interface {
	// ApplySale applies fn to the current player and team under the store's
	// write lock and persists both results together. fn errors abort the
	// sale with no state change.
	ApplySale(
		ctx context.Context,
		playerID, teamID string,
		fn func(player.Player, team.Team) (player.Player, team.Team, error),
	) (player.Player, team.Team, error)
}

// EventLog records accepted auction actions in order.
type EventLog interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}
