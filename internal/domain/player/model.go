package player

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmailTaken is returned by repositories when a create collides with an
// existing player's email.
var ErrEmailTaken = errors.New("email already taken")

// Player is a ping-pong player together with the current period's aggregates.
// Wins, losses and points are mutated only by match accrual and the weekly reset.
type Player struct {
	ID     int64
	Name   string
	Email  string
	Wins   int
	Losses int
	Points int
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Wins < 0 || p.Losses < 0 || p.Points < 0 {
		return fmt.Errorf("player aggregates cannot be negative")
	}

	return nil
}

// Principal identifies the authenticated player attached to a request.
type Principal struct {
	PlayerID int64
	Name     string
}
