// Package repository provides the file-backed persistence layer for
// users, publications and likes. Each repository exclusively owns one
// collection and its backing JSON document; there are no cross-store
// transactions.
package repository

import (
	"errors"

	"github.com/yisusboy23/servidor/internal/models"
	"github.com/yisusboy23/servidor/internal/store"
)

// errNoChange aborts an Update without persisting when the mutation
// turns out to be a no-op (duplicate key, missing record).
var errNoChange = errors.New("repository: no change")

// UserRepository persists user records in users.json.
type UserRepository struct {
	users *store.Collection[models.User]
}

// NewUserRepository creates a UserRepository over the given collection.
func NewUserRepository(users *store.Collection[models.User]) *UserRepository {
	return &UserRepository{users: users}
}

// All returns every stored user in insertion order.
func (r *UserRepository) All() []models.User {
	return r.users.Snapshot()
}

// Get returns the user with the given username, matched exactly and
// case-sensitively. The second result reports whether it was found.
func (r *UserRepository) Get(username string) (models.User, bool) {
	var (
		out   models.User
		found bool
	)
	r.users.View(func(users []models.User) {
		for _, u := range users {
			if u.Username == username {
				out = u
				found = true
				return
			}
		}
	})
	return out, found
}

// Insert appends the user and persists. It returns false without
// writing if a user with the same username already exists; the
// existence check and the append run under one lock.
func (r *UserRepository) Insert(user models.User) (bool, error) {
	err := r.users.Update(func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Username == user.Username {
				return nil, errNoChange
			}
		}
		return append(users, user), nil
	})
	if errors.Is(err, errNoChange) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
