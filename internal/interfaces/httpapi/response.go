package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/pingpong-league/internal/domain/match"
	"github.com/riskibarqy/pingpong-league/internal/usecase"
)

// Responses use the Google JSON style guide envelope: top-level apiVersion
// plus exactly one of data or error.
const (
	googleAPIVersion = "2.0"
	errorDomain      = "pingpong-league"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

// errorClasses orders sentinel checks from most to least specific; the first
// match wins. Unmatched errors fall through to 500 INTERNAL.
var errorClasses = []struct {
	sentinels []error
	mapped    mappedError
}{
	{
		sentinels: []error{usecase.ErrInvalidInput},
		mapped:    mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"},
	},
	{
		sentinels: []error{usecase.ErrNotFound},
		mapped:    mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"},
	},
	{
		sentinels: []error{usecase.ErrConflict},
		mapped:    mappedError{HTTPStatus: http.StatusConflict, Reason: "conflict", Status: "ALREADY_EXISTS"},
	},
	{
		sentinels: []error{usecase.ErrUnauthorized},
		mapped:    mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "unauthorized", Status: "UNAUTHENTICATED"},
	},
	{
		sentinels: []error{usecase.ErrForbidden},
		mapped:    mappedError{HTTPStatus: http.StatusForbidden, Reason: "forbidden", Status: "PERMISSION_DENIED"},
	},
	{
		sentinels: []error{match.ErrSamePlayer, match.ErrNoGames, match.ErrTiedGame, match.ErrNoStrictWinner},
		mapped:    mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidMatch", Status: "INVALID_ARGUMENT"},
	},
}

var internalMappedError = mappedError{
	HTTPStatus: http.StatusInternalServerError,
	Reason:     "internalError",
	Status:     "INTERNAL",
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	for _, class := range errorClasses {
		for _, sentinel := range class.sentinels {
			if errors.Is(err, sentinel) {
				return class.mapped
			}
		}
	}
	return internalMappedError
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope(mapped, err.Error()))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError,
		errorEnvelope(internalMappedError, "internal server error"))
}

func errorEnvelope(mapped mappedError, message string) googleResponseEnvelope {
	return googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: message,
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{Domain: errorDomain, Reason: mapped.Reason, Message: message},
			},
		},
	}
}
