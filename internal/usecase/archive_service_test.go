package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/pingpong-league/internal/domain/match"
	"github.com/riskibarqy/pingpong-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/pingpong-league/internal/platform/logging"
)

func TestArchiveService_WeekLeaderboard_NotFound(t *testing.T) {
	t.Parallel()

	playerRepo := memory.NewPlayerRepository()
	service := NewArchiveService(memory.NewArchiveRepository(playerRepo))

	_, err := service.WeekLeaderboard(context.Background(), time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("WeekLeaderboard error = %v, want ErrNotFound", err)
	}
}

func TestArchiveService_AfterSnapshot(t *testing.T) {
	t.Parallel()

	playerRepo := memory.NewPlayerRepository()
	archiveRepo := memory.NewArchiveRepository(playerRepo)

	alice, err := playerRepo.Create(context.Background(), newPlayer("Alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	bob, err := playerRepo.Create(context.Background(), newPlayer("Bob", "bob@example.com"))
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	matches := NewMatchService(playerRepo, memory.NewMatchRepository(playerRepo))
	if _, err := matches.CreateMatch(context.Background(), CreateMatchInput{
		PlayedAt: time.Date(2025, 10, 28, 19, 0, 0, 0, time.UTC),
		HomeID:   alice.ID,
		AwayID:   bob.ID,
		Games:    []match.GameScore{{Home: 11, Away: 4}},
	}); err != nil {
		t.Fatalf("CreateMatch error: %v", err)
	}

	leaderboard := NewLeaderboardService(playerRepo, archiveRepo, logging.NewNop())
	now := time.Date(2025, 10, 29, 12, 0, 0, 0, time.UTC)
	if _, err := leaderboard.Snapshot(context.Background(), now); err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}

	service := NewArchiveService(archiveRepo)

	weeks, err := service.ListWeeks(context.Background())
	if err != nil {
		t.Fatalf("ListWeeks error: %v", err)
	}
	if len(weeks) != 1 {
		t.Fatalf("expected 1 archived week, got %d", len(weeks))
	}
	if weeks[0].WinnerID != alice.ID || weeks[0].WinnerName != "Alice" {
		t.Fatalf("unexpected week winner: %+v", weeks[0])
	}
	if weeks[0].TotalPlayers != 2 {
		t.Fatalf("week total_players = %d, want 2", weeks[0].TotalPlayers)
	}

	rows, err := service.WeekLeaderboard(context.Background(), weeks[0].WeekStart)
	if err != nil {
		t.Fatalf("WeekLeaderboard error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 archived rows, got %d", len(rows))
	}
	if rows[0].Rank != 1 || rows[0].PlayerID != alice.ID {
		t.Fatalf("unexpected rank 1 row: %+v", rows[0])
	}
	if rows[1].Rank != 2 {
		t.Fatalf("unexpected rank 2 row: %+v", rows[1])
	}
}
