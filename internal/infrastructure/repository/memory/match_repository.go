package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/match"
)

// MatchRepository stores matches behind its own mutex. Score updates and
// state transitions go through Update so the read-modify-write is atomic.
type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
	order   []string
}

// NewMatchRepository builds a repository holding the given matches in seed
// order.
func NewMatchRepository(matches []match.Match) *MatchRepository {
	repo := &MatchRepository{matches: make(map[string]match.Match, len(matches))}
	for _, m := range matches {
		repo.matches[m.ID] = cloneMatch(m)
		repo.order = append(repo.order, m.ID)
	}
	return repo
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneMatch(r.matches[id]))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	if err := ctx.Err(); err != nil {
		return match.Match{}, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[matchID]
	if !ok {
		return match.Match{}, false, nil
	}
	return cloneMatch(m), true, nil
}

func (r *MatchRepository) Update(
	ctx context.Context,
	matchID string,
	fn func(match.Match) (match.Match, error),
) (match.Match, bool, error) {
	if err := ctx.Err(); err != nil {
		return match.Match{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.matches[matchID]
	if !ok {
		return match.Match{}, false, nil
	}
	next, err := fn(cloneMatch(current))
	if err != nil {
		return match.Match{}, true, err
	}
	if next.ID != matchID {
		return match.Match{}, true, fmt.Errorf("%w: match id changed from %q to %q", ErrConflict, matchID, next.ID)
	}
	r.matches[matchID] = cloneMatch(next)
	return cloneMatch(next), true, nil
}

func cloneMatch(m match.Match) match.Match {
	out := m
	if m.CompletedAt != nil {
		at := *m.CompletedAt
		out.CompletedAt = &at
	}
	return out
}
