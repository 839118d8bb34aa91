package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error codes forming the closed set used in error responses. Any other
// value is treated as an internal error.
const (
	CodeBadRequest   = "BadRequest"
	CodeUnauthorized = "Unauthorized"
	CodeForbidden    = "Forbidden"
	CodeNotFound     = "NotFound"
	CodeConflict     = "Conflict"
	CodeInternal     = "InternalServerError"
)

// ErrorResponse is the wire shape of every error produced by the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusForCode maps an error code to its HTTP status. Codes outside the
// closed set map to 500.
func StatusForCode(code string) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response for the given error code.
// The HTTP status is derived deterministically from the code.
func RespondWithError(w http.ResponseWriter, r *http.Request, code, message string) {
	status := StatusForCode(code)

	slog.Debug("sending error response",
		"status_code", status,
		"error", code,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Error: code, Message: message})
}
