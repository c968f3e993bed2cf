package usecase

import (
	"context"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/pingpong-league/internal/domain/archive"
	"github.com/riskibarqy/pingpong-league/internal/domain/player"
	"github.com/riskibarqy/pingpong-league/internal/platform/logging"
)

// LeaderboardService owns the weekly stats lifecycle: snapshotting the
// current standings into the archive and resetting the live aggregates.
type LeaderboardService struct {
	playerRepo  player.Repository
	archiveRepo archive.Repository
	logger      *logging.Logger
	now         func() time.Time
}

func NewLeaderboardService(
	playerRepo player.Repository,
	archiveRepo archive.Repository,
	logger *logging.Logger,
) *LeaderboardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeaderboardService{
		playerRepo:  playerRepo,
		archiveRepo: archiveRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// RolloverResult reports what one archive-then-reset pass did.
type RolloverResult struct {
	Archived int
	Reset    int
}

// Snapshot archives the current standings into one immutable weekly
// snapshot keyed by the week containing now. It writes nothing and
// returns 0 when there are no players or none has any activity. The
// archive batch is a single atomic unit.
func (s *LeaderboardService) Snapshot(ctx context.Context, now time.Time) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Snapshot")
	defer span.End()

	weekStart, weekEnd := archive.WeekOf(now)

	players, err := s.playerRepo.ListRanked(ctx)
	if err != nil {
		return 0, fmt.Errorf("list ranked players: %w", err)
	}

	if !hasActivity(players) {
		s.logger.InfoContext(ctx, "no activity this week, skipping archive",
			"week_start", weekStart,
			"week_end", weekEnd,
		)
		return 0, nil
	}

	winnerID := players[0].ID
	rows := make([]archive.Archive, 0, len(players))
	for i, p := range players {
		rows = append(rows, archive.Archive{
			WeekStart:  weekStart,
			WeekEnd:    weekEnd,
			WinnerID:   winnerID,
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Wins:       p.Wins,
			Losses:     p.Losses,
			Points:     p.Points,
			Rank:       i + 1,
		})
	}

	if err := s.archiveRepo.SaveSnapshot(ctx, rows); err != nil {
		return 0, fmt.Errorf("save weekly snapshot: %w", err)
	}

	s.logger.InfoContext(ctx, "weekly snapshot archived",
		"week_start", weekStart,
		"week_end", weekEnd,
		"players", len(rows),
		"winner_id", winnerID,
	)

	return len(rows), nil
}

// ResetAll zeroes every player's aggregates and returns the number of
// players touched, including those already at zero.
func (s *LeaderboardService) ResetAll(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.ResetAll")
	defer span.End()

	count, err := s.playerRepo.ResetStats(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset player stats: %w", err)
	}

	s.logger.InfoContext(ctx, "player stats reset", "players", count)

	return count, nil
}

// Rollover runs Snapshot then ResetAll, in that order. A snapshot failure
// aborts the pass before any reset, so live aggregates survive until the
// next scheduled attempt recomputes boundaries from its own clock.
func (s *LeaderboardService) Rollover(ctx context.Context) (RolloverResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Rollover")
	defer span.End()

	archived, err := s.Snapshot(ctx, s.now())
	if err != nil {
		return RolloverResult{}, crerr.Wrap(err, "weekly rollover: archive")
	}

	reset, err := s.ResetAll(ctx)
	if err != nil {
		return RolloverResult{Archived: archived}, crerr.Wrap(err, "weekly rollover: reset")
	}

	return RolloverResult{Archived: archived, Reset: reset}, nil
}

func hasActivity(players []player.Player) bool {
	for _, p := range players {
		if p.Points != 0 || p.Wins != 0 {
			return true
		}
	}

	return false
}
