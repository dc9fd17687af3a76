// Package service implements the business rules on top of the
// file-backed repositories: username uniqueness, password hashing,
// the post-deletion cascade and the no-duplicate-like constraint.
package service

import "errors"

// Sentinel errors forming the failure taxonomy. The HTTP layer
// translates them to status codes; anything else is an internal
// failure.
var (
	// ErrInvalidInput marks a missing or empty request field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUserExists marks a registration with an already-taken username.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound marks an operation naming an unknown username.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword marks a failed password verification.
	ErrWrongPassword = errors.New("wrong password")
	// ErrPostNotFound marks a lookup missing the composite
	// (imagePath, imageName) key.
	ErrPostNotFound = errors.New("publication not found")
	// ErrAlreadyLiked marks a duplicate like of the same publication.
	ErrAlreadyLiked = errors.New("publication already liked")
	// ErrLikeNotFound marks removal of a like that is not present.
	ErrLikeNotFound = errors.New("like not found")
	// ErrNoLikes marks a likes lookup for a user with no entry.
	ErrNoLikes = errors.New("user has no likes")
)
