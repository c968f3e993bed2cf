package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/pingpong-league/internal/domain/match"
	"github.com/riskibarqy/pingpong-league/internal/domain/player"
)

type MatchService struct {
	playerRepo player.Repository
	matchRepo  match.Repository
}

func NewMatchService(playerRepo player.Repository, matchRepo match.Repository) *MatchService {
	return &MatchService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

type CreateMatchInput struct {
	PlayedAt time.Time
	HomeID   int64
	AwayID   int64
	Games    []match.GameScore
}

// CreateMatch validates the payload, resolves the outcome and records the
// match together with both players' stat accrual in one atomic unit.
func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	m := match.Match{
		PlayedAt: input.PlayedAt,
		HomeID:   input.HomeID,
		AwayID:   input.AwayID,
		Games:    input.Games,
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, err
	}

	for _, playerID := range []int64{m.HomeID, m.AwayID} {
		_, exists, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get player: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: both home_id and away_id must refer to existing players", ErrInvalidInput)
		}
	}

	res := match.Result{Points: match.WinPoints}
	if match.Winner(m.Games) == match.SideHome {
		res.WinnerID, res.LoserID = m.HomeID, m.AwayID
	} else {
		res.WinnerID, res.LoserID = m.AwayID, m.HomeID
	}

	recorded, err := s.matchRepo.Record(ctx, m, res)
	if err != nil {
		return match.Match{}, fmt.Errorf("record match: %w", err)
	}

	return recorded, nil
}

// ListMatches returns matches newest first.
func (s *MatchService) ListMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}
