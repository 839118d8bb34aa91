package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cosan-app/cosan-api/internal/api/shared"
	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/service"
)

// UserHandler handles account-related API requests.
type UserHandler struct {
	users     *service.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{
		users:     users,
		validator: validator.New(),
	}
}

// Create handles POST /users. The endpoint is public: the caller does not
// have a token yet.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	user, err := h.users.Create(r.Context(), service.UserParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		LoginID:   req.LoginID,
		Password:  req.Password,
		Email:     req.Email,
		Country:   req.Country,
	})
	if err != nil {
		respondStoreError(w, r, err, "User not found", "User already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userResponse(user))
}

// Login handles POST /users/login. The endpoint is public and
// authenticates by payload: login ID plus password.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.LoginID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, shared.CodeUnauthorized, "Invalid login ID or password")
			return
		}
		// A malformed stored hash or an unreachable store is an internal
		// failure, never a rejected login.
		respondStoreError(w, r, err, "User not found", "User already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userResponse(user))
}

// Get handles GET /users/{userID}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "userID")
	if err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "User not found", "User already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userResponse(user))
}

// Update handles PUT /users.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	user, err := h.users.Update(r.Context(), req.UserID, service.UserParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		LoginID:   req.LoginID,
		Password:  req.Password,
		Email:     req.Email,
		Country:   req.Country,
	})
	if err != nil {
		respondStoreError(w, r, err, "User not found", "User already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userResponse(user))
}

// Delete handles DELETE /users/{userID}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "userID")
	if err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, "User not found", "User already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		Status: "The user has been deleted",
	})
}

func userResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Country:   user.Country,
	}
}
