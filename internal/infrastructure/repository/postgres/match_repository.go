package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/pingpong-league/internal/domain/match"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Record persists the match with its games and applies the result to both
// players' aggregates in one transaction.
func (r *MatchRepository) Record(ctx context.Context, m match.Match, res match.Result) (match.Match, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return match.Match{}, fmt.Errorf("begin tx record match: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertMatch = `INSERT INTO matches (played_at, home_player_id, away_player_id, winner_id)
VALUES ($1, $2, $3, $4)
RETURNING id`
	if err := tx.GetContext(ctx, &m.ID, insertMatch, m.PlayedAt, m.HomeID, m.AwayID, res.WinnerID); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	const insertGame = `INSERT INTO game_scores (match_id, seq, home_score, away_score)
VALUES ($1, $2, $3, $4)`
	for i, g := range m.Games {
		if _, err := tx.ExecContext(ctx, insertGame, m.ID, i+1, g.Home, g.Away); err != nil {
			return match.Match{}, fmt.Errorf("insert game %d: %w", i+1, err)
		}
	}

	const accrueWin = `UPDATE players
SET wins = wins + 1, points = points + $2, updated_at = NOW()
WHERE id = $1`
	if _, err := tx.ExecContext(ctx, accrueWin, res.WinnerID, res.Points); err != nil {
		return match.Match{}, fmt.Errorf("accrue winner stats: %w", err)
	}

	const accrueLoss = `UPDATE players
SET losses = losses + 1, updated_at = NOW()
WHERE id = $1`
	if _, err := tx.ExecContext(ctx, accrueLoss, res.LoserID); err != nil {
		return match.Match{}, fmt.Errorf("accrue loser stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return match.Match{}, fmt.Errorf("commit record match tx: %w", err)
	}

	return m, nil
}

// List returns matches newest first, each with its games in played order.
func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	const listMatches = `SELECT id, played_at, home_player_id, away_player_id, winner_id, created_at
FROM matches
ORDER BY id DESC`

	var matchRows []matchTableModel
	if err := r.db.SelectContext(ctx, &matchRows, listMatches); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	if len(matchRows) == 0 {
		return []match.Match{}, nil
	}

	const listGames = `SELECT id, match_id, seq, home_score, away_score
FROM game_scores
ORDER BY match_id, seq`

	var gameRows []gameScoreTableModel
	if err := r.db.SelectContext(ctx, &gameRows, listGames); err != nil {
		return nil, fmt.Errorf("list game scores: %w", err)
	}

	gamesByMatch := make(map[int64][]match.GameScore, len(matchRows))
	for _, g := range gameRows {
		gamesByMatch[g.MatchID] = append(gamesByMatch[g.MatchID], match.GameScore{
			Home: g.HomeScore,
			Away: g.AwayScore,
		})
	}

	out := make([]match.Match, 0, len(matchRows))
	for _, row := range matchRows {
		out = append(out, match.Match{
			ID:       row.ID,
			PlayedAt: row.PlayedAt,
			HomeID:   row.HomePlayerID,
			AwayID:   row.AwayPlayerID,
			Games:    gamesByMatch[row.ID],
		})
	}

	return out, nil
}
