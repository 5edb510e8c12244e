package usecase

import (
	"context"
	"fmt"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/match"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/standings"
	"github.com/clonkbot/cricket-auction-hub/internal/domain/team"
	"github.com/clonkbot/cricket-auction-hub/internal/platform/cache"
)

const standingsCacheKey = "standings:table"

// StandingService derives the points table from teams and completed
// matches. The table is cached behind a TTL store; Invalidate drops it when
// a match completes so the next read recomputes.
type StandingService struct {
	teams   team.Repository
	matches match.Repository
	store   *cache.Store
}

// NewStandingService builds the service. store may be nil to disable
// caching.
func NewStandingService(teams team.Repository, matches match.Repository, store *cache.Store) *StandingService {
	return &StandingService{teams: teams, matches: matches, store: store}
}

// Table returns the current points table, leaders first.
func (s *StandingService) Table(ctx context.Context) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingService.Table")
	defer span.End()

	if s.store == nil {
		return s.compute(ctx)
	}

	value, err := s.store.GetOrLoad(standingsCacheKey, func() (any, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return nil, err
	}
	rows, ok := value.([]standings.Row)
	if !ok {
		return nil, fmt.Errorf("standings cache holds %T", value)
	}
	return rows, nil
}

// Invalidate drops the cached table.
func (s *StandingService) Invalidate() {
	if s.store != nil {
		s.store.Delete(standingsCacheKey)
	}
}

func (s *StandingService) compute(ctx context.Context) ([]standings.Row, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	matches, err := s.matches.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return standings.Compute(teams, matches), nil
}
