package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/yisusboy23/servidor/internal/models"
	"github.com/yisusboy23/servidor/internal/service"
)

// PostService defines the interface for publication operations
// required by the HTTP handlers.
type PostService interface {
	// List returns every publication in insertion order.
	List() []models.Post
	// Create stores metadata for an uploaded image.
	Create(owner, description, imageName, imagePath string) (models.Post, error)
	// Delete removes the publication matching the composite key and
	// cascades into the like index.
	Delete(imagePath, imageName string) error
}

// PostHandler handles HTTP requests for listing, uploading and
// deleting publications.
type PostHandler struct {
	PostService PostService
	// UploadsDir is where uploaded image files are written.
	UploadsDir string
	// MaxUploadBytes caps the size of a single upload.
	MaxUploadBytes int64
}

// publicationRef carries the composite key (plus whatever snapshot
// fields the client sends) identifying one publication.
type publicationRef struct {
	ImagePath   string `json:"imagePath"`
	ImageName   string `json:"imageName"`
	Description string `json:"description,omitempty"`
	Username    string `json:"username,omitempty"`
	Timestamp   int64  `json:"timestamp,omitempty"`
}

func (p publicationRef) ref() models.PostRef {
	return models.PostRef{
		ImagePath:   p.ImagePath,
		ImageName:   p.ImageName,
		Description: p.Description,
		Username:    p.Username,
		Timestamp:   p.Timestamp,
	}
}

// List handles GET /api/publicaciones.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.PostService.List())
}

// Upload handles POST /api/upload.
// It expects a multipart form with an "image" file plus "username",
// "description" and "imageName" fields. The file is stored under the
// uploads directory with a generated name (timestamp plus random
// suffix, original extension preserved) and the created publication is
// returned with imagePath pointing at the public /uploads/ URL.
func (h *PostHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		respondMessage(w, http.StatusBadRequest, "no image uploaded")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "no image uploaded")
		return
	}
	defer file.Close()

	storedName := fmt.Sprintf("%d-%s%s",
		time.Now().UnixNano(),
		uuid.NewString(),
		filepath.Ext(header.Filename),
	)
	if err := h.saveImage(file, storedName); err != nil {
		respondMessage(w, http.StatusInternalServerError, "could not store image")
		return
	}

	imageName := r.FormValue("imageName")
	if imageName == "" {
		imageName = header.Filename
	}

	post, err := h.PostService.Create(
		r.FormValue("username"),
		r.FormValue("description"),
		imageName,
		"/uploads/"+storedName,
	)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "could not save publication")
		return
	}
	respondJSON(w, http.StatusCreated, post)
}

// Delete handles DELETE /api/publicaciones.
// The body names the publication by its composite key.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username    string         `json:"username"`
		Publication publicationRef `json:"publication"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch err := h.PostService.Delete(req.Publication.ImagePath, req.Publication.ImageName); {
	case err == nil:
		respondMessage(w, http.StatusOK, "publication deleted")
	case errors.Is(err, service.ErrPostNotFound):
		respondMessage(w, http.StatusNotFound, "publication not found")
	default:
		respondMessage(w, http.StatusInternalServerError, "could not delete publication")
	}
}

// saveImage writes the uploaded file under the uploads directory,
// creating it if missing.
func (h *PostHandler) saveImage(src io.Reader, name string) error {
	if err := os.MkdirAll(h.UploadsDir, 0o755); err != nil {
		return err
	}
	dst, err := os.Create(filepath.Join(h.UploadsDir, name))
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
