package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/pingpong-league/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	players *PlayerRepository
	matches []match.Match
	nextID  int64
}

func NewMatchRepository(players *PlayerRepository) *MatchRepository {
	return &MatchRepository{
		players: players,
		nextID:  1,
	}
}

func (r *MatchRepository) Record(_ context.Context, m match.Match, res match.Result) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.players.applyResult(res.WinnerID, res.LoserID, res.Points) {
		return match.Match{}, fmt.Errorf("players %d/%d not found", res.WinnerID, res.LoserID)
	}

	m.ID = r.nextID
	r.nextID++
	m.Games = append([]match.GameScore(nil), m.Games...)
	r.matches = append(r.matches, m)

	return m, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for i := len(r.matches) - 1; i >= 0; i-- {
		out = append(out, r.matches[i])
	}

	return out, nil
}
