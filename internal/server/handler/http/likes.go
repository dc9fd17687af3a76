package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yisusboy23/servidor/internal/models"
	"github.com/yisusboy23/servidor/internal/service"
)

// LikeService defines the interface for like-index operations required
// by the HTTP handlers.
type LikeService interface {
	// ListFor returns the user's liked publications.
	ListFor(username string) ([]models.PostRef, error)
	// Add records a like, creating the user's entry on first use.
	Add(username string, ref models.PostRef) error
	// Remove deletes a like.
	Remove(username string, ref models.PostRef) error
}

// LikeHandler handles HTTP requests for the per-user liked
// publications index.
type LikeHandler struct {
	LikeService LikeService
}

// likeRequest represents the JSON payload for adding and removing
// likes.
type likeRequest struct {
	Username    string         `json:"username"`
	Publication publicationRef `json:"publication"`
}

// ListFor handles GET /api/likes/{username}.
// A user who has never liked anything gets 404; a user whose likes
// were all removed gets an empty list.
func (h *LikeHandler) ListFor(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	likes, err := h.LikeService.ListFor(username)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "no likes for user")
		return
	}
	if likes == nil {
		likes = []models.PostRef{}
	}
	respondJSON(w, http.StatusOK, likes)
}

// Add handles POST /api/likes.
func (h *LikeHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch err := h.LikeService.Add(req.Username, req.Publication.ref()); {
	case err == nil:
		respondMessage(w, http.StatusCreated, "like added")
	case errors.Is(err, service.ErrInvalidInput):
		respondMessage(w, http.StatusBadRequest, "username and publication are required")
	case errors.Is(err, service.ErrUserNotFound):
		respondMessage(w, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrAlreadyLiked):
		respondMessage(w, http.StatusBadRequest, "publication already liked")
	default:
		respondMessage(w, http.StatusInternalServerError, "could not add like")
	}
}

// Remove handles DELETE /api/likes.
func (h *LikeHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch err := h.LikeService.Remove(req.Username, req.Publication.ref()); {
	case err == nil:
		respondMessage(w, http.StatusOK, "like removed")
	case errors.Is(err, service.ErrUserNotFound):
		respondMessage(w, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrLikeNotFound):
		respondMessage(w, http.StatusNotFound, "like not found")
	default:
		respondMessage(w, http.StatusInternalServerError, "could not remove like")
	}
}
