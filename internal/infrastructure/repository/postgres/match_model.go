package postgres

import "time"

type matchTableModel struct {
	ID           int64     `db:"id"`
	PlayedAt     time.Time `db:"played_at"`
	HomePlayerID int64     `db:"home_player_id"`
	AwayPlayerID int64     `db:"away_player_id"`
	WinnerID     int64     `db:"winner_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type gameScoreTableModel struct {
	ID        int64 `db:"id"`
	MatchID   int64 `db:"match_id"`
	Seq       int   `db:"seq"`
	HomeScore int   `db:"home_score"`
	AwayScore int   `db:"away_score"`
}
