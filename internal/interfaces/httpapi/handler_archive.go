package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/pingpong-league/internal/usecase"
)

type resetResponseDTO struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	ArchivedPlayers int    `json:"archived_players"`
	ResetPlayers    int    `json:"reset_players"`
}

func (h *Handler) ListArchivedWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListArchivedWeeks")
	defer span.End()

	weeks, err := h.archiveService.ListWeeks(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list archived weeks failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]weekInfoDTO, 0, len(weeks))
	for _, week := range weeks {
		items = append(items, weekInfoToDTO(week))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetWeeklyLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeeklyLeaderboard")
	defer span.End()

	weekStart, err := parseWeekStart(r.PathValue("weekStart"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: week_start must be an ISO date-time", usecase.ErrInvalidInput))
		return
	}

	rows, err := h.archiveService.WeekLeaderboard(ctx, weekStart)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]archiveRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, archiveRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ResetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetWeek")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	result, err := h.leaderboardService.Rollover(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "manual weekly reset failed", "player_id", principal.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resetResponseDTO{
		Success:         true,
		Message:         fmt.Sprintf("Weekly reset completed successfully by %s", principal.Name),
		ArchivedPlayers: result.Archived,
		ResetPlayers:    result.Reset,
	})
}

// parseWeekStart accepts RFC3339, a zone-less ISO timestamp or a bare date.
func parseWeekStart(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized week start %q", raw)
}
