package archive

import (
	"context"
	"time"
)

// Repository describes archive persistence needs from use cases.
type Repository interface {
	// SaveSnapshot writes every row of one weekly snapshot as a single
	// atomic unit. A failure must leave no partial snapshot behind.
	SaveSnapshot(ctx context.Context, rows []Archive) error
	// ListWeeks returns distinct archived weeks grouped by
	// (week_start, week_end, winner_id), newest first.
	ListWeeks(ctx context.Context) ([]WeekInfo, error)
	// ListWeek returns the full leaderboard of one week ordered by rank
	// ascending. An unknown week yields an empty slice.
	ListWeek(ctx context.Context, weekStart time.Time) ([]Archive, error)
}
