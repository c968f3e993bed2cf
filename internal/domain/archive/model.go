package archive

import "time"

// Archive is one immutable snapshot row: a single player's standing inside
// one archived week. Rows are created by the weekly snapshot and never
// mutated afterwards.
type Archive struct {
	ID         int64
	WeekStart  time.Time
	WeekEnd    time.Time
	WinnerID   int64
	PlayerID   int64
	PlayerName string
	Wins       int
	Losses     int
	Points     int
	Rank       int
}

// WeekInfo summarizes one archived week for listings.
type WeekInfo struct {
	WeekStart    time.Time
	WeekEnd      time.Time
	WinnerID     int64
	WinnerName   string
	TotalPlayers int
}
