package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/pingpong-league/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[int64]player.Player
	nextID  int64
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		players: make(map[int64]player.Player),
		nextID:  1,
	}
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.players[p.ID] = p

	return p, nil
}

func (r *PlayerRepository) List(_ context.Context, nameQuery string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(nameQuery)
	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) GetByEmail(_ context.Context, email string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if p.Email != "" && p.Email == email {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) ListRanked(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *PlayerRepository) ResetStats(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.players {
		p.Wins = 0
		p.Losses = 0
		p.Points = 0
		r.players[id] = p
	}

	return len(r.players), nil
}

// applyResult mutates both players under the repository lock so the match
// repository can piggyback its accrual on the same atomic unit.
func (r *PlayerRepository) applyResult(winnerID, loserID int64, points int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	winner, okW := r.players[winnerID]
	loser, okL := r.players[loserID]
	if !okW || !okL {
		return false
	}

	winner.Wins++
	winner.Points += points
	loser.Losses++
	r.players[winnerID] = winner
	r.players[loserID] = loser

	return true
}
