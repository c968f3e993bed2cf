package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/pingpong-league/internal/domain/player"
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

type CreatePlayerInput struct {
	Name  string
	Email string
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(input.Email)
	if email != "" {
		_, exists, err := s.playerRepo.GetByEmail(ctx, email)
		if err != nil {
			return player.Player{}, fmt.Errorf("get player by email: %w", err)
		}
		if exists {
			return player.Player{}, fmt.Errorf("%w: a player with this email already exists", ErrConflict)
		}
	}

	created, err := s.playerRepo.Create(ctx, player.Player{Name: name, Email: email})
	if err != nil {
		if errors.Is(err, player.ErrEmailTaken) {
			return player.Player{}, fmt.Errorf("%w: a player with this email already exists", ErrConflict)
		}
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

// ListPlayers returns players sorted by lowercased name, optionally
// filtered by a case-insensitive name substring.
func (s *PlayerService) ListPlayers(ctx context.Context, nameQuery string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx, strings.TrimSpace(nameQuery))
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return strings.ToLower(players[i].Name) < strings.ToLower(players[j].Name)
	})

	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return p, nil
}
