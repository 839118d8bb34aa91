package api

import (
	"errors"
	"net/http"

	"github.com/cosan-app/cosan-api/internal/api/shared"
	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/platform/logger"
	"github.com/cosan-app/cosan-api/internal/store"
)

// respondStoreError translates a service or store failure into the
// deterministic error-code mapping: absence → NotFound, duplicates →
// Conflict, constraint violations and domain validation → BadRequest, and
// everything unrecognized → an internal error. Storage transport failures
// fall through to the internal branch so they are never conflated with
// "zero rows".
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg, conflictMsg string) {
	switch {
	case store.IsNotFoundError(err):
		shared.RespondWithError(w, r, shared.CodeNotFound, notFoundMsg)
	case store.IsDuplicateError(err):
		shared.RespondWithError(w, r, shared.CodeConflict, conflictMsg)
	case errors.Is(err, store.ErrInvalidEntity):
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
	case isDomainValidationError(err):
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
	default:
		logger.FromContext(r.Context()).Error("request failed", "error", err)
		shared.RespondWithError(w, r, shared.CodeInternal, "Internal Server Error")
	}
}

// isDomainValidationError reports whether err is one of the domain
// validation sentinels.
func isDomainValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrValidation,
		domain.ErrInvalidID,
		domain.ErrEmptyFirstName,
		domain.ErrEmptyLastName,
		domain.ErrEmptyLoginID,
		domain.ErrEmptyEmail,
		domain.ErrInvalidEmail,
		domain.ErrPasswordTooLong,
		domain.ErrEmptyHashedPassword,
		domain.ErrEmptyWord,
		domain.ErrWordTooLong,
		domain.ErrInvalidUserID,
		domain.ErrInvalidWordID,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
