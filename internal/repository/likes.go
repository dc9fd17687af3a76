package repository

import (
	"errors"

	"github.com/yisusboy23/servidor/internal/models"
	"github.com/yisusboy23/servidor/internal/store"
)

// LikeRepository persists like entries in likes.json, one entry per
// username.
type LikeRepository struct {
	likes *store.Collection[models.LikeEntry]
}

// NewLikeRepository creates a LikeRepository over the given collection.
func NewLikeRepository(likes *store.Collection[models.LikeEntry]) *LikeRepository {
	return &LikeRepository{likes: likes}
}

// All returns every like entry in insertion order.
func (r *LikeRepository) All() []models.LikeEntry {
	return r.likes.Snapshot()
}

// Get returns the like entry for the given username. The second result
// reports whether the user has an entry at all.
func (r *LikeRepository) Get(username string) (models.LikeEntry, bool) {
	var (
		out   models.LikeEntry
		found bool
	)
	r.likes.View(func(entries []models.LikeEntry) {
		for _, e := range entries {
			if e.Username == username {
				out = models.LikeEntry{
					Username:   e.Username,
					LikedPosts: append([]models.PostRef(nil), e.LikedPosts...),
				}
				found = true
				return
			}
		}
	})
	return out, found
}

// Add appends ref to the user's entry, creating the entry lazily on
// the first like, and persists. It returns false without writing if a
// ref with the same (imagePath, imageName) key is already present.
func (r *LikeRepository) Add(username string, ref models.PostRef) (bool, error) {
	err := r.likes.Update(func(entries []models.LikeEntry) ([]models.LikeEntry, error) {
		for i, e := range entries {
			if e.Username != username {
				continue
			}
			for _, liked := range e.LikedPosts {
				if liked.SameKey(ref) {
					return nil, errNoChange
				}
			}
			entries[i].LikedPosts = append(e.LikedPosts, ref)
			return entries, nil
		}
		return append(entries, models.LikeEntry{
			Username:   username,
			LikedPosts: []models.PostRef{ref},
		}), nil
	})
	if errors.Is(err, errNoChange) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes ref from the user's entry and persists. The booleans
// report whether the user has an entry and whether the ref was present
// in it. The entry itself is kept even when its last like is removed.
func (r *LikeRepository) Remove(username string, ref models.PostRef) (userFound, likeFound bool, err error) {
	err = r.likes.Update(func(entries []models.LikeEntry) ([]models.LikeEntry, error) {
		for i, e := range entries {
			if e.Username != username {
				continue
			}
			userFound = true
			for j, liked := range e.LikedPosts {
				if liked.SameKey(ref) {
					likeFound = true
					entries[i].LikedPosts = append(e.LikedPosts[:j:j], e.LikedPosts[j+1:]...)
					return entries, nil
				}
			}
			return nil, errNoChange
		}
		return nil, errNoChange
	})
	if errors.Is(err, errNoChange) {
		err = nil
	}
	return userFound, likeFound, err
}

// RemoveEverywhere strips any ref matching the (imagePath, imageName)
// key from every entry and persists once. Used by the post-deletion
// cascade; removing nothing is not an error.
func (r *LikeRepository) RemoveEverywhere(ref models.PostRef) error {
	err := r.likes.Update(func(entries []models.LikeEntry) ([]models.LikeEntry, error) {
		changed := false
		for i, e := range entries {
			kept := e.LikedPosts[:0:0]
			for _, liked := range e.LikedPosts {
				if liked.SameKey(ref) {
					changed = true
					continue
				}
				kept = append(kept, liked)
			}
			entries[i].LikedPosts = kept
		}
		if !changed {
			return nil, errNoChange
		}
		return entries, nil
	})
	if errors.Is(err, errNoChange) {
		return nil
	}
	return err
}
