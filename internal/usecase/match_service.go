package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/match"
	"github.com/clonkbot/cricket-auction-hub/internal/platform/logging"
)

// MatchService drives fixtures through their lifecycle and applies live
// scoring updates ball by ball.
type MatchService struct {
	matches     match.Repository
	logger      *logging.Logger
	now         func() time.Time
	onCompleted func()
}

// NewMatchService builds the service. onCompleted, if non-nil, runs after a
// match completes so derived read models can drop stale state.
func NewMatchService(matches match.Repository, logger *logging.Logger, onCompleted func()) *MatchService {
	return &MatchService{
		matches:     matches,
		logger:      logger,
		now:         time.Now,
		onCompleted: onCompleted,
	}
}

// List returns every fixture in seed order.
func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.List")
	defer span.End()

	matches, err := s.matches.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// Get returns one fixture by ID.
func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Get")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return m, nil
}

// Start moves an upcoming match to live.
func (s *MatchService) Start(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Start")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	updated, exists, err := s.matches.Update(ctx, matchID, func(m match.Match) (match.Match, error) {
		return m.Started()
	})
	if err != nil {
		return match.Match{}, fmt.Errorf("start match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	s.logger.InfoContext(ctx, "match started", "match_id", updated.ID)
	return updated, nil
}

// UpdateLiveScore applies one scoring event to a live match: runs added to
// the side's total, an optional wicket, and the ball counter advancing for
// any wicket or scoring delivery.
func (s *MatchService) UpdateLiveScore(ctx context.Context, matchID string, side match.Side, runs int, wicket bool) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.UpdateLiveScore")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if runs < 0 {
		return match.Match{}, fmt.Errorf("%w: runs must not be negative", ErrInvalidInput)
	}
	if runs == 0 && !wicket {
		return match.Match{}, fmt.Errorf("%w: a score update needs runs or a wicket", ErrInvalidInput)
	}

	updated, exists, err := s.matches.Update(ctx, matchID, func(m match.Match) (match.Match, error) {
		return m.WithBall(side, runs, wicket)
	})
	if err != nil {
		return match.Match{}, fmt.Errorf("update score: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	s.logger.DebugContext(ctx, "score updated",
		"match_id", updated.ID,
		"side", string(side),
		"runs", runs,
		"wicket", wicket,
	)
	return updated, nil
}

// Complete finishes a live match with an explicit winner and result line,
// then notifies the completion hook so standings recompute.
func (s *MatchService) Complete(ctx context.Context, matchID, winnerTeamID, result string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Complete")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	winnerTeamID = strings.TrimSpace(winnerTeamID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if winnerTeamID == "" {
		return match.Match{}, fmt.Errorf("%w: winner team id is required", ErrInvalidInput)
	}

	completedAt := s.now()
	updated, exists, err := s.matches.Update(ctx, matchID, func(m match.Match) (match.Match, error) {
		return m.Completed(winnerTeamID, result, completedAt)
	})
	if err != nil {
		return match.Match{}, fmt.Errorf("complete match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	if s.onCompleted != nil {
		s.onCompleted()
	}
	s.logger.InfoContext(ctx, "match completed",
		"match_id", updated.ID,
		"winner_team_id", updated.WinnerTeamID,
	)
	return updated, nil
}
