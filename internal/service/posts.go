package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yisusboy23/servidor/internal/models"
)

// PostRepository defines the persistence operations required by the
// post service.
type PostRepository interface {
	// All returns every stored publication in insertion order.
	All() []models.Post
	// Insert appends the publication.
	Insert(post models.Post) error
	// Remove deletes the first publication matching the composite key
	// and returns it; the boolean reports whether a match was found.
	Remove(imagePath, imageName string) (models.Post, bool, error)
}

// LikeCascade is the slice of the like index the post service needs to
// propagate a deletion.
type LikeCascade interface {
	// RemoveEverywhere strips refs matching the key from every entry.
	RemoveEverywhere(ref models.PostRef) error
}

// PostService implements listing, creation and deletion of
// publications, including the cascade into the like index.
type PostService struct {
	repo       PostRepository
	likes      LikeCascade
	uploadsDir string
	log        *zap.Logger
}

// NewPostService constructs a PostService. uploadsDir is the local
// directory backing the public /uploads/ path; deleted publications
// have their stored image unlinked from it.
func NewPostService(repo PostRepository, likes LikeCascade, uploadsDir string, log *zap.Logger) *PostService {
	return &PostService{repo: repo, likes: likes, uploadsDir: uploadsDir, log: log}
}

// List returns every publication in insertion order.
func (s *PostService) List() []models.Post {
	return s.repo.All()
}

// Create stores metadata for an uploaded image and returns the record.
// The owner is not validated against the user store. Each record gets
// a generated internal id; the API contract stays on the
// (imagePath, imageName) composite key.
func (s *PostService) Create(owner, description, imageName, imagePath string) (models.Post, error) {
	post := models.Post{
		ID:          uuid.NewString(),
		ImagePath:   imagePath,
		ImageName:   imageName,
		Description: description,
		Username:    owner,
		Timestamp:   time.Now().Unix(),
	}
	if err := s.repo.Insert(post); err != nil {
		return models.Post{}, fmt.Errorf("saving publication: %w", err)
	}
	return post, nil
}

// Delete removes the publication matching the composite key, unlinks
// its stored image and strips it from every user's liked list. It
// returns ErrPostNotFound when no publication matches. The image
// unlink is best-effort: a filesystem failure is logged and the
// metadata removal stands. The two store writes (posts, likes) are
// sequential and independently persisted, not a transaction.
func (s *PostService) Delete(imagePath, imageName string) error {
	removed, found, err := s.repo.Remove(imagePath, imageName)
	if err != nil {
		return fmt.Errorf("removing publication: %w", err)
	}
	if !found {
		return ErrPostNotFound
	}

	if local := s.localImagePath(removed.ImagePath); local != "" {
		if err := os.Remove(local); err != nil && !os.IsNotExist(err) {
			s.log.Warn("could not delete stored image",
				zap.String("path", local), zap.Error(err))
		}
	}

	if err := s.likes.RemoveEverywhere(removed.Ref()); err != nil {
		return fmt.Errorf("cascading like removal: %w", err)
	}
	return nil
}

// localImagePath maps a public /uploads/... image URL to its file
// under the uploads directory. Anything else (external URLs, paths
// escaping the directory) yields "".
func (s *PostService) localImagePath(imagePath string) string {
	name, ok := strings.CutPrefix(imagePath, "/uploads/")
	if !ok || name == "" {
		return ""
	}
	name = filepath.Clean(name)
	if name == "." || strings.Contains(name, "..") || filepath.IsAbs(name) {
		return ""
	}
	return filepath.Join(s.uploadsDir, name)
}
