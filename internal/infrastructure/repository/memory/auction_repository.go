// Package memory holds mutex-guarded in-process repositories seeded at
// startup. Every read hands out clones so callers can never mutate the
// store behind the lock's back.
package memory

import (
	"context"
	"fmt"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/player"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/team"
)

var ErrConflict = crerr.New("memory: conflicting update")

// AuctionStore keeps the player pool and the franchise ledger behind a
// single mutex. Bids touch one player; sales touch a player and a team in
// the same critical section via ApplySale. Players() and Teams() expose
// per-aggregate repository views sharing that mutex.
type AuctionStore struct {
	mu      sync.RWMutex
	players map[string]player.Player
	teams   map[string]team.Team

	playerOrder []string
	teamOrder   []string
}

// NewAuctionStore builds a store holding the given players and teams.
// Listing order follows seed order.
func NewAuctionStore(players []player.Player, teams []team.Team) *AuctionStore {
	store := &AuctionStore{
		players: make(map[string]player.Player, len(players)),
		teams:   make(map[string]team.Team, len(teams)),
	}
	for _, p := range players {
		store.players[p.ID] = p
		store.playerOrder = append(store.playerOrder, p.ID)
	}
	for _, t := range teams {
		store.teams[t.ID] = cloneTeam(t)
		store.teamOrder = append(store.teamOrder, t.ID)
	}
	return store
}

// Players returns the player repository view.
func (s *AuctionStore) Players() player.Repository { return playerView{s} }

// Teams returns the team repository view.
func (s *AuctionStore) Teams() team.Repository { return teamView{s} }

// ApplySale looks up the player and the team, runs fn on the pair and
// persists both results in one critical section. fn errors leave the store
// untouched.
func (s *AuctionStore) ApplySale(
	ctx context.Context,
	playerID, teamID string,
	fn func(player.Player, team.Team) (player.Player, team.Team, error),
) (player.Player, team.Team, error) {
	if err := ctx.Err(); err != nil {
		return player.Player{}, team.Team{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerID]
	if !ok {
		return player.Player{}, team.Team{}, fmt.Errorf("%w: player %q not found", ErrConflict, playerID)
	}
	t, ok := s.teams[teamID]
	if !ok {
		return player.Player{}, team.Team{}, fmt.Errorf("%w: team %q not found", ErrConflict, teamID)
	}

	nextPlayer, nextTeam, err := fn(p, cloneTeam(t))
	if err != nil {
		return player.Player{}, team.Team{}, err
	}
	if nextPlayer.ID != playerID || nextTeam.ID != teamID {
		return player.Player{}, team.Team{}, fmt.Errorf("%w: sale changed record identity", ErrConflict)
	}

	s.players[playerID] = nextPlayer
	s.teams[teamID] = cloneTeam(nextTeam)
	return nextPlayer, cloneTeam(nextTeam), nil
}

type playerView struct {
	store *AuctionStore
}

func (v playerView) List(ctx context.Context) ([]player.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	out := make([]player.Player, 0, len(v.store.playerOrder))
	for _, id := range v.store.playerOrder {
		out = append(out, v.store.players[id])
	}
	return out, nil
}

func (v playerView) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	if err := ctx.Err(); err != nil {
		return player.Player{}, false, err
	}
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	p, ok := v.store.players[playerID]
	return p, ok, nil
}

func (v playerView) Update(
	ctx context.Context,
	playerID string,
	fn func(player.Player) (player.Player, error),
) (player.Player, bool, error) {
	if err := ctx.Err(); err != nil {
		return player.Player{}, false, err
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()

	current, ok := v.store.players[playerID]
	if !ok {
		return player.Player{}, false, nil
	}
	next, err := fn(current)
	if err != nil {
		return player.Player{}, true, err
	}
	if next.ID != playerID {
		return player.Player{}, true, fmt.Errorf("%w: player id changed from %q to %q", ErrConflict, playerID, next.ID)
	}
	v.store.players[playerID] = next
	return next, true, nil
}

type teamView struct {
	store *AuctionStore
}

func (v teamView) List(ctx context.Context) ([]team.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	out := make([]team.Team, 0, len(v.store.teamOrder))
	for _, id := range v.store.teamOrder {
		out = append(out, cloneTeam(v.store.teams[id]))
	}
	return out, nil
}

func (v teamView) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	if err := ctx.Err(); err != nil {
		return team.Team{}, false, err
	}
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	t, ok := v.store.teams[teamID]
	if !ok {
		return team.Team{}, false, nil
	}
	return cloneTeam(t), true, nil
}

func cloneTeam(t team.Team) team.Team {
	out := t
	out.Roster = append([]team.Pick(nil), t.Roster...)
	return out
}
