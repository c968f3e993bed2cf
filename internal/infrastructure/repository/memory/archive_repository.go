package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/pingpong-league/internal/domain/archive"
)

type ArchiveRepository struct {
	mu      sync.RWMutex
	players *PlayerRepository
	rows    []archive.Archive
	nextID  int64
}

func NewArchiveRepository(players *PlayerRepository) *ArchiveRepository {
	return &ArchiveRepository{
		players: players,
		nextID:  1,
	}
}

func (r *ArchiveRepository) SaveSnapshot(_ context.Context, rows []archive.Archive) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		row.ID = r.nextID
		r.nextID++
		r.rows = append(r.rows, row)
	}

	return nil
}

func (r *ArchiveRepository) ListWeeks(ctx context.Context) ([]archive.WeekInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type weekKey struct {
		start    int64
		end      int64
		winnerID int64
	}

	counts := make(map[weekKey]int)
	infos := make(map[weekKey]archive.WeekInfo)
	for _, row := range r.rows {
		key := weekKey{start: row.WeekStart.Unix(), end: row.WeekEnd.Unix(), winnerID: row.WinnerID}
		counts[key]++
		if _, ok := infos[key]; !ok {
			infos[key] = archive.WeekInfo{
				WeekStart: row.WeekStart,
				WeekEnd:   row.WeekEnd,
				WinnerID:  row.WinnerID,
			}
		}
	}

	out := make([]archive.WeekInfo, 0, len(infos))
	for key, info := range infos {
		info.TotalPlayers = counts[key]
		if winner, ok, _ := r.players.GetByID(ctx, info.WinnerID); ok {
			info.WinnerName = winner.Name
		} else {
			info.WinnerName = "Unknown"
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStart.After(out[j].WeekStart) })

	return out, nil
}

func (r *ArchiveRepository) ListWeek(_ context.Context, weekStart time.Time) ([]archive.Archive, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]archive.Archive, 0)
	for _, row := range r.rows {
		if row.WeekStart.Equal(weekStart) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })

	return out, nil
}
