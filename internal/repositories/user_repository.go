package repositories

import (
	"errors"

	"catalog/internal/models"
)

// ErrUserNotFound is returned by user lookups that match no account.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for operator account data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
