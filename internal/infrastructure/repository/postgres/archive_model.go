package postgres

import (
	"time"

	"github.com/riskibarqy/pingpong-league/internal/domain/archive"
)

type archiveTableModel struct {
	ID         int64     `db:"id"`
	WeekStart  time.Time `db:"week_start"`
	WeekEnd    time.Time `db:"week_end"`
	WinnerID   int64     `db:"winner_id"`
	PlayerID   int64     `db:"player_id"`
	PlayerName string    `db:"player_name"`
	Wins       int       `db:"wins"`
	Losses     int       `db:"losses"`
	Points     int       `db:"points"`
	Rank       int       `db:"rank"`
	CreatedAt  time.Time `db:"created_at"`
}

type weekInfoRowModel struct {
	WeekStart    time.Time `db:"week_start"`
	WeekEnd      time.Time `db:"week_end"`
	WinnerID     int64     `db:"winner_id"`
	WinnerName   string    `db:"winner_name"`
	TotalPlayers int       `db:"total_players"`
}

func archiveFromRow(row archiveTableModel) archive.Archive {
	return archive.Archive{
		ID:         row.ID,
		WeekStart:  row.WeekStart,
		WeekEnd:    row.WeekEnd,
		WinnerID:   row.WinnerID,
		PlayerID:   row.PlayerID,
		PlayerName: row.PlayerName,
		Wins:       row.Wins,
		Losses:     row.Losses,
		Points:     row.Points,
		Rank:       row.Rank,
	}
}
