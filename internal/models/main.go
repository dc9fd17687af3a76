// Package models defines the core data structures for users,
// publications and per-user liked publications.
package models

// User represents an application user with credentials.
type User struct {
	// Username is the login name chosen by the user. It is the unique
	// key for the user record, matched case-sensitively.
	Username string `json:"username"`
	// PasswordHash is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	PasswordHash string `json:"passwordHash"`
}

// Post represents an uploaded image and its metadata.
type Post struct {
	// ID is an internal identifier assigned at creation. The API never
	// requires it; lookups use the (ImagePath, ImageName) pair.
	ID string `json:"id"`
	// ImagePath is the public URL path of the stored image.
	ImagePath string `json:"imagePath"`
	// ImageName is the display name given to the image at upload time.
	ImageName string `json:"imageName"`
	// Description is the user-provided caption.
	Description string `json:"description"`
	// Username is the uploader. It is not validated against the user store.
	Username string `json:"username"`
	// Timestamp is the Unix creation time.
	Timestamp int64 `json:"timestamp"`
}

// Ref returns the snapshot of the post stored inside like entries.
func (p Post) Ref() PostRef {
	return PostRef{
		ImagePath:   p.ImagePath,
		ImageName:   p.ImageName,
		Description: p.Description,
		Username:    p.Username,
		Timestamp:   p.Timestamp,
	}
}

// PostRef is a copy of a post's fields taken at like time. It is a
// snapshot, not a live reference: later edits or deletions of the post
// do not rewrite stored refs (deletion removes them via the cascade).
type PostRef struct {
	ImagePath   string `json:"imagePath"`
	ImageName   string `json:"imageName"`
	Description string `json:"description,omitempty"`
	Username    string `json:"username,omitempty"`
	Timestamp   int64  `json:"timestamp,omitempty"`
}

// SameKey reports whether two refs identify the same publication,
// using the (imagePath, imageName) composite key.
func (r PostRef) SameKey(other PostRef) bool {
	return r.ImagePath == other.ImagePath && r.ImageName == other.ImageName
}

// LikeEntry holds one user's liked publications. An entry is created
// lazily the first time the user likes something.
type LikeEntry struct {
	Username   string    `json:"username"`
	LikedPosts []PostRef `json:"likedPosts"`
}
