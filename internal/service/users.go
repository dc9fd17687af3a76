package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/yisusboy23/servidor/internal/models"
)

// UserRepository defines the persistence operations required by the
// user service.
type UserRepository interface {
	// All returns every stored user in insertion order.
	All() []models.User
	// Get returns the user with the given username, matched exactly.
	Get(username string) (models.User, bool)
	// Insert appends the user unless the username is taken; it returns
	// false for a duplicate.
	Insert(user models.User) (bool, error)
}

// UserService implements registration, login and listing of users.
type UserService struct {
	repo UserRepository
	cost int
}

// NewUserService constructs a UserService. cost is the bcrypt cost
// factor; values outside bcrypt's range fall back to the default.
func NewUserService(repo UserRepository, cost int) *UserService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, cost: cost}
}

// Register creates a new user with a bcrypt-hashed password.
// It returns ErrInvalidInput when either field is empty and
// ErrUserExists when the username is taken (case-sensitive match).
func (s *UserService) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	inserted, err := s.repo.Insert(models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	if !inserted {
		return ErrUserExists
	}
	return nil
}

// Authenticate verifies the password for the given username. It
// returns ErrUserNotFound for an unknown username and ErrWrongPassword
// when the password does not match the stored hash. The comparison is
// delegated to bcrypt.
func (s *UserService) Authenticate(username, password string) error {
	user, found := s.repo.Get(username)
	if !found {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// List returns every stored user. Records carry password hashes; the
// HTTP layer redacts them before transmission.
func (s *UserService) List() []models.User {
	return s.repo.All()
}

// Exists reports whether the username is registered.
func (s *UserService) Exists(username string) bool {
	_, found := s.repo.Get(username)
	return found
}
