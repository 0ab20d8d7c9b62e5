package repository

import (
	"context"
	"errors"

	"userhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user account matches the given key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user account persistence.
type UserRepository interface {
	// Create persists a new user account. A duplicate email surfaces as
	// the user-exists conflict error.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user account by its identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
