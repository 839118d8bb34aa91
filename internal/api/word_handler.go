package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cosan-app/cosan-api/internal/api/shared"
	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/service"
)

// WordHandler handles word-related API requests.
type WordHandler struct {
	words     *service.WordService
	validator *validator.Validate
}

// NewWordHandler creates a new WordHandler with the given dependencies.
func NewWordHandler(words *service.WordService) *WordHandler {
	return &WordHandler{
		words:     words,
		validator: validator.New(),
	}
}

// Create handles POST /words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateWordRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	word, err := h.words.Create(r.Context(), req.Word)
	if err != nil {
		respondStoreError(w, r, err, "Word not found", "Word already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, wordResponse(word))
}

// Get handles GET /words/{wordID}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "wordID")
	if err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	word, err := h.words.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Word not found", "Word already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordResponse(word))
}

// Update handles PUT /words.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateWordRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	word, err := h.words.Update(r.Context(), req.WordID, req.Word)
	if err != nil {
		respondStoreError(w, r, err, "Word not found", "Word already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordResponse(word))
}

// Delete handles DELETE /words/{wordID}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "wordID")
	if err != nil {
		shared.RespondWithError(w, r, shared.CodeBadRequest, err.Error())
		return
	}

	if err := h.words.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err, "Word not found", "Word already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		Status: "The word has been deleted",
	})
}

func wordResponse(word *domain.Word) WordResponse {
	return WordResponse{
		WordID: word.ID,
		Word:   word.Word,
	}
}
