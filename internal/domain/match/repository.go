package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	// Update applies fn to the stored match under the repository's write
	// lock and persists the result. The bool reports whether the match
	// exists; fn errors abort the update without mutating anything.
	Update(ctx context.Context, matchID string, fn func(Match) (Match, error)) (Match, bool, error)
}
