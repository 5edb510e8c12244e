package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/auction"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/player"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/team"
	"github.com/clonkbot/cricket-auction-hub/internal/platform/id"
	"github.com/clonkbot/cricket-auction-hub/internal/platform/logging"
)

// PlayerStatus filters player listings.
type PlayerStatus string

const (
	PlayerStatusAny    PlayerStatus = ""
	PlayerStatusSold   PlayerStatus = "sold"
	PlayerStatusUnsold PlayerStatus = "unsold"
)

// AuctionService runs the bidding flow: raising bids, settling sales and
// serving the pool, summary and event feed.
type AuctionService struct {
	players player.Repository
	teams   team.Repository
	sales   auction.SaleApplier
	events  auction.EventLog
	logger  *logging.Logger
	idGen   id.Generator
	now     func() time.Time
}

func NewAuctionService(
	players player.Repository,
	teams team.Repository,
	sales auction.SaleApplier,
	events auction.EventLog,
	logger *logging.Logger,
	idGen id.Generator,
) *AuctionService {
	return &AuctionService{
		players: players,
		teams:   teams,
		sales:   sales,
		events:  events,
		logger:  logger,
		idGen:   idGen,
		now:     time.Now,
	}
}

// ListPlayers returns the pool, optionally filtered to sold or unsold lots.
func (s *AuctionService) ListPlayers(ctx context.Context, status PlayerStatus) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "AuctionService.ListPlayers")
	defer span.End()

	switch status {
	case PlayerStatusAny, PlayerStatusSold, PlayerStatusUnsold:
	default:
		return nil, fmt.Errorf("%w: unknown player status %q", ErrInvalidInput, status)
	}

	players, err := s.players.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	if status == PlayerStatusAny {
		return players, nil
	}

	filtered := make([]player.Player, 0, len(players))
	for _, p := range players {
		if (status == PlayerStatusSold) == p.Sold() {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetPlayer returns one lot by ID.
func (s *AuctionService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "AuctionService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return p, nil
}

// PlaceBid raises the standing bid on an unsold player by increment and logs
// a bid event.
func (s *AuctionService) PlaceBid(ctx context.Context, playerID string, increment int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "AuctionService.PlaceBid")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if increment <= 0 {
		return player.Player{}, fmt.Errorf("%w: bid increment must be positive", ErrInvalidInput)
	}

	updated, exists, err := s.players.Update(ctx, playerID, func(p player.Player) (player.Player, error) {
		return auction.NextBid(p, increment)
	})
	if err != nil {
		return player.Player{}, fmt.Errorf("place bid: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	s.record(ctx, auction.Event{
		Type:     auction.EventTypeBid,
		PlayerID: updated.ID,
		Amount:   updated.CurrentBid,
	})
	s.logger.InfoContext(ctx, "bid placed",
		"player_id", updated.ID,
		"current_bid", updated.CurrentBid,
	)
	return updated, nil
}

// SellPlayer settles the lot to the given team at the standing bid. The
// player/team pair is updated atomically, so a losing concurrent sale sees
// the player already sold and no budget moves twice.
func (s *AuctionService) SellPlayer(ctx context.Context, playerID, teamID string) (player.Player, team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "AuctionService.SellPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	teamID = strings.TrimSpace(teamID)
	if playerID == "" || teamID == "" {
		return player.Player{}, team.Team{}, fmt.Errorf("%w: player id and team id are required", ErrInvalidInput)
	}

	if _, exists, err := s.players.GetByID(ctx, playerID); err != nil {
		return player.Player{}, team.Team{}, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return player.Player{}, team.Team{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	if _, exists, err := s.teams.GetByID(ctx, teamID); err != nil {
		return player.Player{}, team.Team{}, fmt.Errorf("get team: %w", err)
	} else if !exists {
		return player.Player{}, team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	soldAt := s.now()
	soldPlayer, buyer, err := s.sales.ApplySale(ctx, playerID, teamID,
		func(p player.Player, t team.Team) (player.Player, team.Team, error) {
			return auction.Sell(p, t, soldAt)
		})
	if err != nil {
		return player.Player{}, team.Team{}, fmt.Errorf("sell player: %w", err)
	}

	s.record(ctx, auction.Event{
		Type:     auction.EventTypeSale,
		PlayerID: soldPlayer.ID,
		TeamID:   buyer.ID,
		Amount:   soldPlayer.CurrentBid,
	})
	s.logger.InfoContext(ctx, "player sold",
		"player_id", soldPlayer.ID,
		"team_id", buyer.ID,
		"price", soldPlayer.CurrentBid,
		"remaining_budget", buyer.Budget,
	)
	return soldPlayer, buyer, nil
}

// Summary returns the sold/unsold header counters.
func (s *AuctionService) Summary(ctx context.Context) (auction.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "AuctionService.Summary")
	defer span.End()

	players, err := s.players.List(ctx)
	if err != nil {
		return auction.Summary{}, fmt.Errorf("list players: %w", err)
	}
	return auction.Summarize(players), nil
}

// ListEvents returns the accepted auction actions in order.
func (s *AuctionService) ListEvents(ctx context.Context) ([]auction.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "AuctionService.ListEvents")
	defer span.End()

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *AuctionService) record(ctx context.Context, event auction.Event) {
	event.ID = s.idGen.NewID("evt")
	event.At = s.now().UTC()
	if err := s.events.Append(ctx, event); err != nil {
		// The state change already landed; a lost audit entry is not worth
		// failing the request over.
		s.logger.WarnContext(ctx, "append auction event failed",
			"event_type", string(event.Type),
			"player_id", event.PlayerID,
			"error", err.Error(),
		)
	}
}
