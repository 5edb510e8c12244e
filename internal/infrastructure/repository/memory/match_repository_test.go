package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/match"
)

func seedTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 4, 12, 19, 30, 0, 0, time.UTC)
}

func TestMatchRepository_SeedState(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches())
	matches, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	if matches[0].Status != match.StatusLive || matches[0].HomeScore.Overs() != "20.0" {
		t.Fatalf("unexpected live match: %+v", matches[0])
	}
	if matches[0].AwayScore.Overs() != "18.3" {
		t.Fatalf("unexpected away overs: %s", matches[0].AwayScore.Overs())
	}
	if matches[1].Status != match.StatusUpcoming {
		t.Fatalf("unexpected second match: %+v", matches[1])
	}
	if matches[2].WinnerTeamID != "t3" || matches[2].AwayScore.Overs() != "18.4" {
		t.Fatalf("unexpected completed match: %+v", matches[2])
	}
}

func TestMatchRepository_UpdatePersistsTransition(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches())
	updated, found, err := repo.Update(context.Background(), "m1", func(m match.Match) (match.Match, error) {
		return m.WithBall(match.SideHome, 4, false)
	})
	if err != nil || !found {
		t.Fatalf("unexpected result: %v %v", found, err)
	}
	if updated.HomeScore.Runs != 191 || updated.HomeScore.Overs() != "20.1" {
		t.Fatalf("unexpected score: %+v", updated.HomeScore)
	}

	stored, _, _ := repo.GetByID(context.Background(), "m1")
	if stored.HomeScore.Runs != 191 {
		t.Fatalf("update not persisted: %+v", stored.HomeScore)
	}
}

func TestMatchRepository_UpdateErrorLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches())
	_, _, err := repo.Update(context.Background(), "m2", func(m match.Match) (match.Match, error) {
		return m.WithBall(match.SideHome, 1, false)
	})
	if !errors.Is(err, match.ErrNotLive) {
		t.Fatalf("expected ErrNotLive, got %v", err)
	}

	stored, _, _ := repo.GetByID(context.Background(), "m2")
	if stored.HomeScore.Runs != 0 || stored.Status != match.StatusUpcoming {
		t.Fatalf("failed update mutated state: %+v", stored)
	}
}

func TestMatchRepository_MissingMatch(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches())
	_, found, err := repo.GetByID(context.Background(), "m99")
	if err != nil || found {
		t.Fatalf("unexpected result: %v %v", found, err)
	}
}
