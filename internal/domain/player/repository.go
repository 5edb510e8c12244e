package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	// Update applies fn to the stored player under the repository's write
	// lock and persists the result. The bool reports whether the player
	// exists; fn errors abort the update without mutating anything.
	Update(ctx context.Context, playerID string, fn func(Player) (Player, error)) (Player, bool, error)
}
