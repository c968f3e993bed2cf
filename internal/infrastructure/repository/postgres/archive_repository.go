package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/pingpong-league/internal/domain/archive"
)

type ArchiveRepository struct {
	db *sqlx.DB
}

func NewArchiveRepository(db *sqlx.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

// SaveSnapshot writes one week's leaderboard rows in a single transaction.
func (r *ArchiveRepository) SaveSnapshot(ctx context.Context, rows []archive.Archive) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save snapshot: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const query = `INSERT INTO weekly_archives (week_start, week_end, winner_id, player_id, player_name, wins, losses, points, rank)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, row := range rows {
		if _, err := tx.ExecContext(ctx, query,
			row.WeekStart, row.WeekEnd, row.WinnerID,
			row.PlayerID, row.PlayerName,
			row.Wins, row.Losses, row.Points, row.Rank,
		); err != nil {
			return fmt.Errorf("insert archive row player=%d: %w", row.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save snapshot tx: %w", err)
	}

	return nil
}

// ListWeeks returns one summary per archived week, newest first.
func (r *ArchiveRepository) ListWeeks(ctx context.Context) ([]archive.WeekInfo, error) {
	const query = `SELECT
    week_start,
    week_end,
    winner_id,
    COALESCE(MAX(player_name) FILTER (WHERE player_id = winner_id), 'Unknown') AS winner_name,
    COUNT(*) AS total_players
FROM weekly_archives
GROUP BY week_start, week_end, winner_id
ORDER BY week_start DESC`

	var rows []weekInfoRowModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list archived weeks: %w", err)
	}

	out := make([]archive.WeekInfo, 0, len(rows))
	for _, row := range rows {
		out = append(out, archive.WeekInfo{
			WeekStart:    row.WeekStart,
			WeekEnd:      row.WeekEnd,
			WinnerID:     row.WinnerID,
			WinnerName:   row.WinnerName,
			TotalPlayers: row.TotalPlayers,
		})
	}

	return out, nil
}

// ListWeek returns the archived leaderboard for the week starting at
// weekStart, rank ascending. An unknown week yields an empty slice.
func (r *ArchiveRepository) ListWeek(ctx context.Context, weekStart time.Time) ([]archive.Archive, error) {
	const query = `SELECT id, week_start, week_end, winner_id, player_id, player_name, wins, losses, points, rank, created_at
FROM weekly_archives
WHERE week_start = $1
ORDER BY rank`

	var rows []archiveTableModel
	if err := r.db.SelectContext(ctx, &rows, query, weekStart); err != nil {
		return nil, fmt.Errorf("list archived week: %w", err)
	}

	out := make([]archive.Archive, 0, len(rows))
	for _, row := range rows {
		out = append(out, archiveFromRow(row))
	}

	return out, nil
}
