package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yisusboy23/servidor/internal/models"
	"github.com/yisusboy23/servidor/internal/service"
)

// UserService defines the interface for user operations required by
// the HTTP handlers.
type UserService interface {
	// Register creates a new user with a hashed password.
	Register(username, password string) error
	// Authenticate verifies a username/password pair.
	Authenticate(username, password string) error
	// List returns every stored user, hashes included.
	List() []models.User
}

// UserHandler handles HTTP requests for user registration, login and
// listing.
type UserHandler struct {
	UserService UserService
}

// credentialsRequest represents the JSON payload for registration and
// login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userResponse is the outbound user representation. The password hash
// is redacted at this boundary; it never leaves the process.
type userResponse struct {
	Username string `json:"username"`
}

// redactUsers maps stored users onto their outbound representation.
func redactUsers(users []models.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{Username: u.Username})
	}
	return out
}

// List handles GET /api/usuarios.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, redactUsers(h.UserService.List()))
}

// Register handles POST /api/usuarios.
// It expects a JSON body with non-empty "username" and "password"
// fields and answers 201 on success, 400 for missing fields or a taken
// username, and 500 for a hashing or persistence failure.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch err := h.UserService.Register(req.Username, req.Password); {
	case err == nil:
		respondMessage(w, http.StatusCreated, "user registered")
	case errors.Is(err, service.ErrInvalidInput):
		respondMessage(w, http.StatusBadRequest, "username and password are required")
	case errors.Is(err, service.ErrUserExists):
		respondMessage(w, http.StatusBadRequest, "user already exists")
	default:
		respondMessage(w, http.StatusInternalServerError, "could not register user")
	}
}

// Login handles POST /api/login.
// The response carries no token or session; success is the whole
// answer.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch err := h.UserService.Authenticate(req.Username, req.Password); {
	case err == nil:
		respondMessage(w, http.StatusOK, "login successful")
	case errors.Is(err, service.ErrUserNotFound):
		respondMessage(w, http.StatusBadRequest, "user not found")
	case errors.Is(err, service.ErrWrongPassword):
		respondMessage(w, http.StatusBadRequest, "wrong password")
	default:
		respondMessage(w, http.StatusInternalServerError, "could not log in")
	}
}
