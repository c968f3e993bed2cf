package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, p Player) (Player, error)
	List(ctx context.Context, nameQuery string) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	GetByEmail(ctx context.Context, email string) (Player, bool, error)
	// ListRanked returns every player ordered by points desc, wins desc,
	// id asc. The order must be stable within one call.
	ListRanked(ctx context.Context) ([]Player, error)
	// ResetStats zeroes wins/losses/points for every player in one atomic
	// unit and returns the number of players touched.
	ResetStats(ctx context.Context) (int, error)
}
