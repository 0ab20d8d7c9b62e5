// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"userhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile matches the given key.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type ProfileRepository interface {
	// Create persists a new profile. The id is generated by the storage
	// layer and written back into the entity. Unique-constraint violations
	// on phone or document number surface as the matching conflict error.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a single profile by its generated identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByUserID retrieves the profile owned by the given user account.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindByPhone retrieves a profile by its canonical phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.Profile, error)

	// FindByDocumentNumber retrieves a profile by its document number.
	FindByDocumentNumber(ctx context.Context, documentNumber string) (*entity.Profile, error)

	// FindAll retrieves every profile, ordered by first name ascending.
	FindAll(ctx context.Context) ([]*entity.Profile, error)

	// Update modifies an existing profile row.
	Update(ctx context.Context, profile *entity.Profile) error
}
