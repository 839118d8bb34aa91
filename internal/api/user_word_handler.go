package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cosan-app/cosan-api/internal/api/shared"
	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/service"
)

// UserWordHandler handles user-word relation API requests.
type UserWordHandler struct {
	userWords *service.UserWordService
	validator *validator.Validate
}

// NewUserWordHandler creates a new UserWordHandler with the given dependencies.
func NewUserWordHandler(userWords *service.UserWordService) *UserWordHandler {
	return &UserWordHandler{
		userWords: userWords,
		validator: validator.New(),
	}
}

// Create handles POST /user-words.
func (h *UserWordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserWordRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	rel, err := h.userWords.Create(r.Context(), req.UserID, req.WordID)
	if err != nil {
		respondStoreError(w, r, err, "User word not found", "User word already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, UserWordRelationResponse{
		UserWordID: rel.ID,
		UserID:     rel.UserID,
		WordID:     rel.WordID,
		CreatedAt:  rel.CreatedAt,
	})
}

// GetByUserAndWord handles GET /user-words/user/{userID}/word/{wordID}.
func (h *UserWordHandler) GetByUserAndWord(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "userID")
	if err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}
	wordID, err := pathInt64(r, "wordID")
	if err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	userWord, err := h.userWords.GetByUserAndWord(r.Context(), userID, wordID)
	if err != nil {
		respondStoreError(w, r, err, "User word not found", "User word already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userWordResponse(userWord))
}

// ListByUser handles GET /user-words/user/{userID}.
func (h *UserWordHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "userID")
	if err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	userWords, err := h.userWords.ListByUser(r.Context(), userID)
	if err != nil {
		respondStoreError(w, r, err, "User word not found", "User word already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userWordResponses(userWords))
}

// ListByWord handles GET /user-words/word/{wordID}.
func (h *UserWordHandler) ListByWord(w http.ResponseWriter, r *http.Request) {
	wordID, err := pathInt64(r, "wordID")
	if err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	userWords, err := h.userWords.ListByWord(r.Context(), wordID)
	if err != nil {
		respondStoreError(w, r, err, "User word not found", "User word already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userWordResponses(userWords))
}

// Delete handles DELETE /user-words/{userWordID}.
func (h *UserWordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "userWordID")
	if err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	if err := h.userWords.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, "User word not found", "User word already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		Status: "The user word has been deleted",
	})
}

func userWordResponse(uw *domain.UserWord) UserWordResponse {
	return UserWordResponse{
		UserWordID: uw.ID,
		UserID:     uw.UserID,
		FirstName:  uw.FirstName,
		LastName:   uw.LastName,
		Email:      uw.Email,
		Country:    uw.Country,
		WordID:     uw.WordID,
		Word:       uw.Word,
		CreatedAt:  uw.CreatedAt,
	}
}

func userWordResponses(userWords []domain.UserWord) []UserWordResponse {
	responses := make([]UserWordResponse, 0, len(userWords))
	for i := range userWords {
		responses = append(responses, userWordResponse(&userWords[i]))
	}
	return responses
}
