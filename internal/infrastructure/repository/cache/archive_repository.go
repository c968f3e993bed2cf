package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/pingpong-league/internal/domain/archive"
	basecache "github.com/riskibarqy/pingpong-league/internal/platform/cache"
)

// ArchiveRepository is a read-through cache over archive reads. Archived
// weeks are immutable once written, so entries only need invalidation
// when a new snapshot lands.
type ArchiveRepository struct {
	next  archive.Repository
	cache *basecache.Store
}

func NewArchiveRepository(next archive.Repository, cache *basecache.Store) *ArchiveRepository {
	return &ArchiveRepository{next: next, cache: cache}
}

func (r *ArchiveRepository) SaveSnapshot(ctx context.Context, rows []archive.Archive) error {
	if err := r.next.SaveSnapshot(ctx, rows); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, archiveKeyPrefix)
	return nil
}

func (r *ArchiveRepository) ListWeeks(ctx context.Context) ([]archive.WeekInfo, error) {
	v, err := r.cache.GetOrLoad(ctx, archiveWeeksKey, func(ctx context.Context) (any, error) {
		items, err := r.next.ListWeeks(ctx)
		if err != nil {
			return nil, err
		}
		return append([]archive.WeekInfo(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]archive.WeekInfo)
	return append([]archive.WeekInfo(nil), items...), nil
}

func (r *ArchiveRepository) ListWeek(ctx context.Context, weekStart time.Time) ([]archive.Archive, error) {
	key := archiveWeekKey(weekStart)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListWeek(ctx, weekStart)
		if err != nil {
			return nil, err
		}
		return append([]archive.Archive(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]archive.Archive)
	return append([]archive.Archive(nil), items...), nil
}

const (
	archiveKeyPrefix = "archive:"
	archiveWeeksKey  = "archive:weeks"
)

func archiveWeekKey(weekStart time.Time) string {
	return "archive:week:" + weekStart.UTC().Format(time.RFC3339)
}
