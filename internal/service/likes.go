package service

import (
	"fmt"

	"github.com/yisusboy23/servidor/internal/models"
)

// LikeRepository defines the persistence operations required by the
// like service.
type LikeRepository interface {
	// All returns every like entry in insertion order.
	All() []models.LikeEntry
	// Get returns the entry for a username and whether it exists.
	Get(username string) (models.LikeEntry, bool)
	// Add appends ref to the user's entry, creating it lazily; it
	// returns false for a duplicate key.
	Add(username string, ref models.PostRef) (bool, error)
	// Remove deletes ref from the user's entry; the booleans report
	// whether the entry and the ref were found.
	Remove(username string, ref models.PostRef) (userFound, likeFound bool, err error)
	// RemoveEverywhere strips refs matching the key from every entry.
	RemoveEverywhere(ref models.PostRef) error
}

// UserLookup is the slice of the user registry the like service needs
// to reject likes from unregistered usernames.
type UserLookup interface {
	Get(username string) (models.User, bool)
}

// LikeService implements the per-user liked-publications index.
type LikeService struct {
	repo  LikeRepository
	users UserLookup
}

// NewLikeService constructs a LikeService.
func NewLikeService(repo LikeRepository, users UserLookup) *LikeService {
	return &LikeService{repo: repo, users: users}
}

// ListFor returns the user's liked publications. It returns ErrNoLikes
// when the user has never liked anything; a user whose last like was
// removed keeps an empty entry and gets an empty list instead.
func (s *LikeService) ListFor(username string) ([]models.PostRef, error) {
	entry, found := s.repo.Get(username)
	if !found {
		return nil, ErrNoLikes
	}
	return entry.LikedPosts, nil
}

// Add records that username liked the referenced publication, creating
// the user's entry on first like. It returns ErrInvalidInput for an
// empty username or ref key, ErrUserNotFound for an unregistered
// username and ErrAlreadyLiked when the key is already in the entry.
func (s *LikeService) Add(username string, ref models.PostRef) error {
	if username == "" || (ref.ImagePath == "" && ref.ImageName == "") {
		return ErrInvalidInput
	}
	if _, found := s.users.Get(username); !found {
		return ErrUserNotFound
	}
	added, err := s.repo.Add(username, ref)
	if err != nil {
		return fmt.Errorf("saving like: %w", err)
	}
	if !added {
		return ErrAlreadyLiked
	}
	return nil
}

// Remove deletes the like for the referenced publication. It returns
// ErrUserNotFound when the user has no entry and ErrLikeNotFound when
// the entry exists but does not contain the key.
func (s *LikeService) Remove(username string, ref models.PostRef) error {
	userFound, likeFound, err := s.repo.Remove(username, ref)
	if err != nil {
		return fmt.Errorf("removing like: %w", err)
	}
	if !userFound {
		return ErrUserNotFound
	}
	if !likeFound {
		return ErrLikeNotFound
	}
	return nil
}

// All returns every like entry, for the full data snapshot.
func (s *LikeService) All() []models.LikeEntry {
	return s.repo.All()
}

// RemoveEverywhere exposes the cascade hook used on post deletion.
func (s *LikeService) RemoveEverywhere(ref models.PostRef) error {
	return s.repo.RemoveEverywhere(ref)
}
