package http

import (
	"net/http"

	"github.com/yisusboy23/servidor/internal/models"
)

// LikeLister is the extra slice of the like index the snapshot needs.
type LikeLister interface {
	All() []models.LikeEntry
}

// DataHandler serves the full state snapshot.
type DataHandler struct {
	UserService UserService
	PostService PostService
	Likes       LikeLister
}

// Snapshot handles GET /api/data, returning users (hashes redacted),
// publications and like entries in one document.
func (h *DataHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"users": redactUsers(h.UserService.List()),
		"posts": h.PostService.List(),
		"likes": h.Likes.All(),
	})
}
