package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/pingpong-league/internal/domain/match"
	"github.com/riskibarqy/pingpong-league/internal/infrastructure/repository/memory"
)

func seedMatchService(t *testing.T) (*MatchService, *memory.PlayerRepository, int64, int64) {
	t.Helper()

	playerRepo := memory.NewPlayerRepository()
	matchRepo := memory.NewMatchRepository(playerRepo)

	alice, err := playerRepo.Create(context.Background(), newPlayer("Alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	bob, err := playerRepo.Create(context.Background(), newPlayer("Bob", "bob@example.com"))
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	return NewMatchService(playerRepo, matchRepo), playerRepo, alice.ID, bob.ID
}

func TestMatchService_CreateMatch_AccruesStats(t *testing.T) {
	t.Parallel()

	service, playerRepo, aliceID, bobID := seedMatchService(t)

	recorded, err := service.CreateMatch(context.Background(), CreateMatchInput{
		PlayedAt: time.Date(2025, 10, 27, 19, 0, 0, 0, time.UTC),
		HomeID:   aliceID,
		AwayID:   bobID,
		Games: []match.GameScore{
			{Home: 11, Away: 7},
			{Home: 9, Away: 11},
			{Home: 11, Away: 5},
		},
	})
	if err != nil {
		t.Fatalf("CreateMatch error: %v", err)
	}
	if recorded.ID == 0 {
		t.Fatal("expected recorded match to carry an id")
	}

	alice, _, err := playerRepo.GetByID(context.Background(), aliceID)
	if err != nil {
		t.Fatalf("get winner: %v", err)
	}
	if alice.Wins != 1 || alice.Losses != 0 || alice.Points != match.WinPoints {
		t.Fatalf("winner stats = %d/%d/%d, want 1/0/%d", alice.Wins, alice.Losses, alice.Points, match.WinPoints)
	}

	bob, _, err := playerRepo.GetByID(context.Background(), bobID)
	if err != nil {
		t.Fatalf("get loser: %v", err)
	}
	if bob.Wins != 0 || bob.Losses != 1 || bob.Points != 0 {
		t.Fatalf("loser stats = %d/%d/%d, want 0/1/0", bob.Wins, bob.Losses, bob.Points)
	}
}

func TestMatchService_CreateMatch_AwayWinner(t *testing.T) {
	t.Parallel()

	service, playerRepo, aliceID, bobID := seedMatchService(t)

	_, err := service.CreateMatch(context.Background(), CreateMatchInput{
		PlayedAt: time.Now(),
		HomeID:   aliceID,
		AwayID:   bobID,
		Games: []match.GameScore{
			{Home: 5, Away: 11},
			{Home: 7, Away: 11},
		},
	})
	if err != nil {
		t.Fatalf("CreateMatch error: %v", err)
	}

	bob, _, err := playerRepo.GetByID(context.Background(), bobID)
	if err != nil {
		t.Fatalf("get winner: %v", err)
	}
	if bob.Wins != 1 || bob.Points != match.WinPoints {
		t.Fatalf("away winner stats = %d wins %d points, want 1/%d", bob.Wins, bob.Points, match.WinPoints)
	}
}

func TestMatchService_CreateMatch_Rejections(t *testing.T) {
	t.Parallel()

	service, playerRepo, aliceID, bobID := seedMatchService(t)

	cases := []struct {
		name    string
		input   CreateMatchInput
		wantErr error
	}{
		{
			name: "same player on both sides",
			input: CreateMatchInput{
				HomeID: aliceID,
				AwayID: aliceID,
				Games:  []match.GameScore{{Home: 11, Away: 3}},
			},
			wantErr: match.ErrSamePlayer,
		},
		{
			name:    "no games",
			input:   CreateMatchInput{HomeID: aliceID, AwayID: bobID},
			wantErr: match.ErrNoGames,
		},
		{
			name: "tied game",
			input: CreateMatchInput{
				HomeID: aliceID,
				AwayID: bobID,
				Games:  []match.GameScore{{Home: 11, Away: 11}},
			},
			wantErr: match.ErrTiedGame,
		},
		{
			name: "even game split",
			input: CreateMatchInput{
				HomeID: aliceID,
				AwayID: bobID,
				Games:  []match.GameScore{{Home: 11, Away: 7}, {Home: 3, Away: 11}},
			},
			wantErr: match.ErrNoStrictWinner,
		},
		{
			name: "unknown player",
			input: CreateMatchInput{
				HomeID: aliceID,
				AwayID: 999,
				Games:  []match.GameScore{{Home: 11, Away: 2}},
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateMatch(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CreateMatch error = %v, want %v", err, tc.wantErr)
			}
		})
	}

	// None of the rejected matches may touch stats.
	alice, _, err := playerRepo.GetByID(context.Background(), aliceID)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if alice.Wins != 0 || alice.Losses != 0 || alice.Points != 0 {
		t.Fatalf("rejected matches mutated stats: %+v", alice)
	}
}

func TestMatchService_ListMatches_NewestFirst(t *testing.T) {
	t.Parallel()

	service, _, aliceID, bobID := seedMatchService(t)

	for i := 0; i < 3; i++ {
		_, err := service.CreateMatch(context.Background(), CreateMatchInput{
			PlayedAt: time.Date(2025, 10, 27+i, 19, 0, 0, 0, time.UTC),
			HomeID:   aliceID,
			AwayID:   bobID,
			Games:    []match.GameScore{{Home: 11, Away: 5}},
		})
		if err != nil {
			t.Fatalf("CreateMatch error: %v", err)
		}
	}

	matches, err := service.ListMatches(context.Background())
	if err != nil {
		t.Fatalf("ListMatches error: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].ID > matches[i-1].ID {
			t.Fatalf("matches not newest first: %d before %d", matches[i-1].ID, matches[i].ID)
		}
	}
}
