package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cosan-app/cosan-api/internal/api/shared"
	"github.com/cosan-app/cosan-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and binds it into
// a request-scoped logger. It should be applied early in the middleware
// chain so that all subsequent handlers log with the trace ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		log := slog.With(slog.String("trace_id", shared.GetTraceID(ctx)))
		ctx = logger.WithContext(ctx, log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
