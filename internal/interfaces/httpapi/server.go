package httpapi

import (
	"log/slog"
	"net/http"
)

// NewRouter assembles the route table and wraps it in the middleware chain:
// tracing, request logging, CORS, and panic recovery, outermost first.
func NewRouter(
	handler *Handler,
	verifier TokenVerifier,
	logger *slog.Logger,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerPublicRoutes(mux, handler)
	registerAuthorizedRoutes(mux, handler, verifier)

	var chain http.Handler = mux
	chain = recoverPanic(logger, chain)
	chain = CORS(corsAllowedOrigins, chain)
	chain = RequestLogging(logger, chain)
	chain = RequestTracing(chain)
	return chain
}

func recoverPanic(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
