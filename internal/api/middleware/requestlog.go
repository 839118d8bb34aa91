package middleware

import (
	"net/http"
	"time"

	"github.com/cosan-app/cosan-api/internal/platform/logger"
)

// statusWriter records the status code written to the response.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one line per request: method, path, response status
// and duration. No bodies and no headers are logged. It is applied
// globally, outside the auth gate, so rejected requests are logged the
// same way as authorized ones.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r)

		logger.FromContext(r.Context()).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.code,
			"duration", time.Since(start).String())
	})
}
