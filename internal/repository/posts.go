package repository

import (
	"errors"

	"github.com/yisusboy23/servidor/internal/models"
	"github.com/yisusboy23/servidor/internal/store"
)

// PostRepository persists publication records in posts.json.
type PostRepository struct {
	posts *store.Collection[models.Post]
}

// NewPostRepository creates a PostRepository over the given collection.
func NewPostRepository(posts *store.Collection[models.Post]) *PostRepository {
	return &PostRepository{posts: posts}
}

// All returns every stored publication in insertion order.
func (r *PostRepository) All() []models.Post {
	return r.posts.Snapshot()
}

// Insert appends the publication and persists. Publications carry no
// unique key constraint; colliding (imagePath, imageName) pairs are
// stored as-is.
func (r *PostRepository) Insert(post models.Post) error {
	return r.posts.Update(func(posts []models.Post) ([]models.Post, error) {
		return append(posts, post), nil
	})
}

// Remove deletes the first publication matching the (imagePath,
// imageName) composite key, in insertion order, and persists. It
// returns the removed record and whether a match was found.
func (r *PostRepository) Remove(imagePath, imageName string) (models.Post, bool, error) {
	var removed models.Post
	err := r.posts.Update(func(posts []models.Post) ([]models.Post, error) {
		for i, p := range posts {
			if p.ImagePath == imagePath && p.ImageName == imageName {
				removed = p
				return append(posts[:i:i], posts[i+1:]...), nil
			}
		}
		return nil, errNoChange
	})
	if errors.Is(err, errNoChange) {
		return models.Post{}, false, nil
	}
	if err != nil {
		return models.Post{}, false, err
	}
	return removed, true, nil
}
