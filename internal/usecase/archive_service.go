package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/pingpong-league/internal/domain/archive"
)

type ArchiveService struct {
	archiveRepo archive.Repository
}

func NewArchiveService(archiveRepo archive.Repository) *ArchiveService {
	return &ArchiveService{archiveRepo: archiveRepo}
}

// ListWeeks returns every archived week, newest first.
func (s *ArchiveService) ListWeeks(ctx context.Context) ([]archive.WeekInfo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.ListWeeks")
	defer span.End()

	weeks, err := s.archiveRepo.ListWeeks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list archived weeks: %w", err)
	}

	return weeks, nil
}

// WeekLeaderboard returns the full leaderboard of one archived week,
// rank ascending.
func (s *ArchiveService) WeekLeaderboard(ctx context.Context, weekStart time.Time) ([]archive.Archive, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.WeekLeaderboard")
	defer span.End()

	rows, err := s.archiveRepo.ListWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("list archived week: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no archived data found for week starting %s", ErrNotFound, weekStart.Format(time.RFC3339))
	}

	return rows, nil
}
