package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/pingpong-league/internal/domain/archive"
	"github.com/riskibarqy/pingpong-league/internal/domain/match"
	"github.com/riskibarqy/pingpong-league/internal/domain/player"
	"github.com/riskibarqy/pingpong-league/internal/usecase"
)

type Handler struct {
	authService        *usecase.AuthService
	playerService      *usecase.PlayerService
	matchService       *usecase.MatchService
	leaderboardService *usecase.LeaderboardService
	archiveService     *usecase.ArchiveService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	leaderboardService *usecase.LeaderboardService,
	archiveService *usecase.ArchiveService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		authService:        authService,
		playerService:      playerService,
		matchService:       matchService,
		leaderboardService: leaderboardService,
		archiveService:     archiveService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type playerDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Points int    `json:"points"`
}

type gameScoreDTO struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type matchDTO struct {
	ID       int64          `json:"id"`
	PlayedAt string         `json:"played_at"`
	HomeID   int64          `json:"home_id"`
	AwayID   int64          `json:"away_id"`
	Games    []gameScoreDTO `json:"games"`
}

type weekInfoDTO struct {
	WeekStart    string `json:"week_start"`
	WeekEnd      string `json:"week_end"`
	WinnerID     int64  `json:"winner_id"`
	WinnerName   string `json:"winner_name"`
	TotalPlayers int    `json:"total_players"`
}

type archiveRowDTO struct {
	WeekStart  string `json:"week_start"`
	WeekEnd    string `json:"week_end"`
	WinnerID   int64  `json:"winner_id"`
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Points     int    `json:"points"`
	Rank       int    `json:"rank"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:     v.ID,
		Name:   v.Name,
		Email:  v.Email,
		Wins:   v.Wins,
		Losses: v.Losses,
		Points: v.Points,
	}
}

func matchToDTO(v match.Match) matchDTO {
	games := make([]gameScoreDTO, 0, len(v.Games))
	for _, g := range v.Games {
		games = append(games, gameScoreDTO{Home: g.Home, Away: g.Away})
	}

	return matchDTO{
		ID:       v.ID,
		PlayedAt: v.PlayedAt.UTC().Format(time.RFC3339),
		HomeID:   v.HomeID,
		AwayID:   v.AwayID,
		Games:    games,
	}
}

func weekInfoToDTO(v archive.WeekInfo) weekInfoDTO {
	return weekInfoDTO{
		WeekStart:    v.WeekStart.Format(time.RFC3339),
		WeekEnd:      v.WeekEnd.Format(time.RFC3339),
		WinnerID:     v.WinnerID,
		WinnerName:   v.WinnerName,
		TotalPlayers: v.TotalPlayers,
	}
}

func archiveRowToDTO(v archive.Archive) archiveRowDTO {
	return archiveRowDTO{
		WeekStart:  v.WeekStart.Format(time.RFC3339),
		WeekEnd:    v.WeekEnd.Format(time.RFC3339),
		WinnerID:   v.WinnerID,
		PlayerID:   v.PlayerID,
		PlayerName: v.PlayerName,
		Wins:       v.Wins,
		Losses:     v.Losses,
		Points:     v.Points,
		Rank:       v.Rank,
	}
}
