package postgres

import (
	"time"

	"github.com/riskibarqy/pingpong-league/internal/domain/player"
)

type playerTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Wins      int       `db:"wins"`
	Losses    int       `db:"losses"`
	Points    int       `db:"points"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:     row.ID,
		Name:   row.Name,
		Email:  row.Email,
		Wins:   row.Wins,
		Losses: row.Losses,
		Points: row.Points,
	}
}
