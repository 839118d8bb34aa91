package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cosan-app/cosan-api/internal/api/shared"
	"github.com/cosan-app/cosan-api/internal/platform/logger"
	"github.com/cosan-app/cosan-api/internal/service/auth"
)

// AuthMiddleware gates protected routes on a valid bearer token.
type AuthMiddleware struct {
	validator auth.TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(validator auth.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
	}
}

// Authenticate extracts and validates the bearer token from the
// Authorization header. On success the validated claims are attached to the
// request context as the Principal; every failure short-circuits with a 401
// and a message naming the sub-case. No other status code leaves this
// middleware.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, shared.CodeUnauthorized, "Authorization header not found")
			return
		}

		// Scheme must be exactly "Bearer", case-sensitive. A header of
		// nothing but whitespace splits into zero fields.
		parts := strings.Fields(authHeader)
		if len(parts) == 0 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, shared.CodeUnauthorized, "Authorization header is not Bearer")
			return
		}

		var token string
		if len(parts) > 1 {
			token = parts[1]
		}
		if token == "" {
			shared.RespondWithError(w, r, shared.CodeUnauthorized, "Token is empty")
			return
		}

		claims, err := m.validator.Validate(r.Context(), token)
		if err != nil {
			// Only a validity indicator is logged, never the token.
			log.Debug("request rejected by auth gate", "valid", false)
			shared.RespondWithError(w, r, shared.CodeUnauthorized, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), shared.PrincipalContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipal extracts the validated token claims from the request
// context. Returns the claims and a boolean indicating if they were found.
func GetPrincipal(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.PrincipalContextKey).(*auth.Claims)
	return claims, ok
}
