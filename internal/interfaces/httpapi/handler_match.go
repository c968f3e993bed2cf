package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/pingpong-league/internal/domain/match"
	"github.com/riskibarqy/pingpong-league/internal/usecase"
)

type createMatchRequest struct {
	PlayedAt string             `json:"played_at"`
	HomeID   int64              `json:"home_id" validate:"required"`
	AwayID   int64              `json:"away_id" validate:"required"`
	Games    []gameScoreRequest `json:"games" validate:"required,min=1,dive"`
}

type gameScoreRequest struct {
	Home int `json:"home" validate:"min=0"`
	Away int `json:"away" validate:"min=0"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.ListMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createMatchRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playedAt := time.Now()
	if req.PlayedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.PlayedAt)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: played_at must be RFC3339", usecase.ErrInvalidInput))
			return
		}
		playedAt = parsed
	}

	if principal.PlayerID != req.HomeID && principal.PlayerID != req.AwayID {
		writeError(ctx, w, fmt.Errorf("%w: only a participant can record this match", usecase.ErrForbidden))
		return
	}

	games := make([]match.GameScore, 0, len(req.Games))
	for _, g := range req.Games {
		games = append(games, match.GameScore{Home: g.Home, Away: g.Away})
	}

	recorded, err := h.matchService.CreateMatch(ctx, usecase.CreateMatchInput{
		PlayedAt: playedAt,
		HomeID:   req.HomeID,
		AwayID:   req.AwayID,
		Games:    games,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed",
			"home_id", req.HomeID,
			"away_id", req.AwayID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(recorded))
}
