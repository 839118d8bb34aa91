package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cosan-app/cosan-api/internal/config"
	"github.com/cosan-app/cosan-api/internal/platform/logger"
)

// TokenValidator validates bearer tokens issued by the external identity
// provider and extracts their claims.
type TokenValidator interface {
	// Validate decodes and validates the token string against the
	// configured secret. Returns the decoded claims on success,
	// ErrExpiredToken when the expiry timestamp has passed, or
	// ErrInvalidToken (wrapping the decoder's diagnostic) for any other
	// failure shape.
	Validate(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded payload of a bearer token. Every field is optional
// in the wire format; an absent exp means the token never expires by this
// check.
type Claims struct {
	UserID    *int64     `json:"uid,omitempty"`
	ExpiresAt *int64     `json:"exp,omitempty"`
	IssuedAt  *time.Time `json:"iat,omitempty"`
	Scopes    []string   `json:"scopes,omitempty"`
	Role      *string    `json:"role,omitempty"`
}

// GetExpirationTime implements jwt.Claims. Epoch seconds are interpreted
// as absolute UTC instants, so the expiry comparison is independent of the
// host timezone.
func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.ExpiresAt == nil {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(*c.ExpiresAt, 0).UTC()), nil
}

// GetIssuedAt implements jwt.Claims. The iat claim is carried as an
// RFC 3339 string rather than a NumericDate and is not validated.
func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error) { return nil, nil }

// GetNotBefore implements jwt.Claims.
func (c *Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

// GetIssuer implements jwt.Claims.
func (c *Claims) GetIssuer() (string, error) { return "", nil }

// GetSubject implements jwt.Claims.
func (c *Claims) GetSubject() (string, error) { return "", nil }

// GetAudience implements jwt.Claims.
func (c *Claims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// hmacTokenValidator is a TokenValidator using HMAC-SHA256 verification.
// It is a pure function of (token, secret, current time): no caching of
// decoded tokens, no state shared between requests.
type hmacTokenValidator struct {
	signingKey []byte
	timeFunc   func() time.Time // injectable for testing
}

// Ensure hmacTokenValidator implements TokenValidator.
var _ TokenValidator = (*hmacTokenValidator)(nil)

// NewTokenValidator creates a TokenValidator verifying HS256 signatures
// with the configured shared secret.
func NewTokenValidator(cfg config.AuthConfig) (TokenValidator, error) {
	if len(cfg.TokenSecret) < 32 {
		return nil, fmt.Errorf("token secret must be at least 32 characters")
	}

	return &hmacTokenValidator{
		signingKey: []byte(cfg.TokenSecret),
		timeFunc:   time.Now,
	}, nil
}

// Validate implements TokenValidator.
func (v *hmacTokenValidator) Validate(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(v.timeFunc),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("token validation failed", "valid", false, "reason", "expired")
			return nil, ErrExpiredToken
		}

		// Signature mismatch, malformed input and every other decoder
		// failure surface as an invalid token with the decoder's
		// diagnostic preserved for the caller's error message.
		log.Debug("token validation failed", "valid", false, "reason", "invalid")
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug("token validation failed", "valid", false, "reason", "invalid claims")
		return nil, ErrInvalidToken
	}

	// Only a boolean indicator is logged; the token string and the
	// decoded claims are confidential.
	log.Debug("token validated", "valid", true)

	return claims, nil
}
