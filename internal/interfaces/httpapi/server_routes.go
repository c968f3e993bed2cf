package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/auth/register", handler.Register)
	mux.HandleFunc("POST /api/auth/login", handler.Login)
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("POST /api/players", handler.CreatePlayer)
	mux.HandleFunc("GET /api/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("GET /api/archives/weeks", handler.ListArchivedWeeks)
	mux.HandleFunc("GET /api/archives/weeks/{weekStart}", handler.GetWeeklyLeaderboard)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /api/matches", RequireAuth(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("POST /api/archives/reset", RequireAuth(verifier, http.HandlerFunc(handler.ResetWeek)))
}
