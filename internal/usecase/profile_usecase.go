// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"userhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProfileInput defines the data required to create a profile.
// Every field is required; the pipeline rejects blank values in declaration
// order before touching storage.
type CreateProfileInput struct {
	IDUser         string `json:"id_user" validate:"max=100"`
	FirstName      string `json:"first_name" validate:"max=100"`
	LastName       string `json:"last_name" validate:"max=100"`
	DocumentType   string `json:"document_type" validate:"max=20"`
	DocumentNumber string `json:"document_number" validate:"max=20"`
	Phone          string `json:"phone" validate:"max=20"`
	Address        string `json:"address" validate:"max=200"`
}

// UpdateProfileInput defines the partial data accepted by a profile update.
// Absent fields leave the stored value unchanged.
type UpdateProfileInput struct {
	FirstName     *string  `json:"first_name,omitempty" validate:"omitempty,min=2,max=100"`
	LastName      *string  `json:"last_name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone         *string  `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address       *string  `json:"address,omitempty" validate:"omitempty,min=5,max=200"`
	MonthlyIncome *float64 `json:"monthly_income,omitempty" validate:"omitempty,min=0"`
}

// --- Output DTOs ---

// AvailabilityResult is the answer of the pre-submission availability checks.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// ProfileUsecase defines the interface for profile-related business
// operations: the validation and normalization pipeline in front of the
// persistence layer.
type ProfileUsecase interface {
	// CreateProfile validates and normalizes the input, rejects duplicate
	// document numbers and phones, and persists a new profile.
	CreateProfile(ctx context.Context, input *CreateProfileInput) (*entity.Profile, error)

	// UpdateProfile applies a partial update to the profile owned by userID
	// and returns the full updated row.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// GetProfile retrieves a profile by its generated identifier.
	GetProfile(ctx context.Context, id string) (*entity.Profile, error)

	// GetProfileByPhone retrieves a profile by phone, normalizing ten bare
	// digits to the +57 form before querying.
	GetProfileByPhone(ctx context.Context, phone string) (*entity.Profile, error)

	// GetProfileByDocumentNumber retrieves a profile by document number.
	GetProfileByDocumentNumber(ctx context.Context, documentNumber string) (*entity.Profile, error)

	// GetAllProfiles retrieves every profile ordered by first name.
	GetAllProfiles(ctx context.Context) ([]*entity.Profile, error)

	// ValidatePhone reports whether a phone number is still available.
	// It never fails: lookup errors count as available.
	ValidatePhone(ctx context.Context, phone string) *AvailabilityResult

	// ValidateDocumentNumber reports whether a document number is still
	// available. It never fails: lookup errors count as available.
	ValidateDocumentNumber(ctx context.Context, documentNumber string) *AvailabilityResult
}
