package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/pingpong-league/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	const query = `INSERT INTO players (name, email, wins, losses, points)
VALUES ($1, $2, 0, 0, 0)
RETURNING id, name, email, wins, losses, points, created_at, updated_at`

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, p.Name, p.Email); err != nil {
		if isUniqueViolation(err) {
			return player.Player{}, fmt.Errorf("create player: %w", player.ErrEmailTaken)
		}
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return playerFromRow(row), nil
}

func (r *PlayerRepository) List(ctx context.Context, nameQuery string) ([]player.Player, error) {
	query := `SELECT id, name, email, wins, losses, points, created_at, updated_at
FROM players`
	args := []any{}
	if nameQuery != "" {
		query += ` WHERE name ILIKE '%' || $1 || '%'`
		args = append(args, nameQuery)
	}
	query += ` ORDER BY id`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	const query = `SELECT id, name, email, wins, losses, points, created_at, updated_at
FROM players
WHERE id = $1`

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) GetByEmail(ctx context.Context, email string) (player.Player, bool, error) {
	const query = `SELECT id, name, email, wins, losses, points, created_at, updated_at
FROM players
WHERE email = $1
LIMIT 1`

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, email); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by email: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) ListRanked(ctx context.Context) ([]player.Player, error) {
	const query = `SELECT id, name, email, wins, losses, points, created_at, updated_at
FROM players
ORDER BY points DESC, wins DESC, id`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list ranked players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

// ResetStats zeroes every player's aggregates and reports how many rows it
// touched, already-zero rows included.
func (r *PlayerRepository) ResetStats(ctx context.Context) (int, error) {
	const query = `UPDATE players
SET wins = 0, losses = 0, points = 0, updated_at = NOW()`

	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("reset player stats: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset player stats rows affected: %w", err)
	}

	return int(affected), nil
}
