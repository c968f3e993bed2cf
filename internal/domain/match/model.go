package match

import (
	"errors"
	"time"
)

// WinPoints is the scoring rule: points awarded for winning a match.
const WinPoints = 3

var (
	ErrSamePlayer     = errors.New("home and away must be different players")
	ErrNoGames        = errors.New("match must contain at least one game")
	ErrTiedGame       = errors.New("game cannot end in a tie")
	ErrNoStrictWinner = errors.New("match must have a winner, games cannot split evenly")
)

// Side names one of the two participants of a match.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// GameScore is one game inside a match. Home and away never tie.
type GameScore struct {
	Home int
	Away int
}

// Match is an immutable record of one completed contest.
type Match struct {
	ID       int64
	PlayedAt time.Time
	HomeID   int64
	AwayID   int64
	Games    []GameScore
}

func (m Match) Validate() error {
	if m.HomeID == m.AwayID {
		return ErrSamePlayer
	}

	return ValidateGames(m.Games)
}

// ValidateGames enforces the invariants the outcome engine relies on:
// a non-empty sequence, no drawn game, and a strict game-count winner.
func ValidateGames(games []GameScore) error {
	if len(games) == 0 {
		return ErrNoGames
	}

	homeWins := 0
	for _, g := range games {
		if g.Home == g.Away {
			return ErrTiedGame
		}
		if g.Home > g.Away {
			homeWins++
		}
	}
	if homeWins*2 == len(games) {
		return ErrNoStrictWinner
	}

	return nil
}

// Winner reports which side won more games. It is a pure function and
// assumes ValidateGames already accepted the sequence; an even split must
// never reach it.
func Winner(games []GameScore) Side {
	homeWins := 0
	for _, g := range games {
		if g.Home > g.Away {
			homeWins++
		}
	}
	if homeWins > len(games)-homeWins {
		return SideHome
	}

	return SideAway
}
