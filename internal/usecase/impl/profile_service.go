// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "userhub/internal/delivery/context"
	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"
	"userhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface. It performs the
// required-field checks, phone normalization and duplicate detection in
// front of the profile repository.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profileRepo repository.ProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requiredProfileFields lists the creation fields in the order they are
// checked; the first blank one names the validation error.
type requiredField struct {
	name  string
	value string
}

// CreateProfile validates and normalizes the input, rejects duplicates and
// persists a new profile. The duplicate checks and the insert are not
// atomic; a concurrent create racing past the checks is caught by the
// storage unique constraints, which the repository translates into the same
// conflict errors.
func (srv *profileService) CreateProfile(ctx context.Context, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	fields := []requiredField{
		{"id_user", input.IDUser},
		{"first_name", input.FirstName},
		{"last_name", input.LastName},
		{"document_type", input.DocumentType},
		{"document_number", input.DocumentNumber},
		{"phone", input.Phone},
		{"address", input.Address},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			srv.log(ctx).Warn("Missing required profile field", slog.String("field", f.name))

			return nil, domainerrors.RequiredFieldError(f.name)
		}
	}

	idUser, err := uuid.Parse(strings.TrimSpace(input.IDUser))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("id_user must be a valid UUID")
	}

	documentNumber := strings.TrimSpace(input.DocumentNumber)
	if _, err := srv.profileRepo.FindByDocumentNumber(ctx, documentNumber); err == nil {
		srv.log(ctx).Warn("Duplicate document number on profile creation", slog.String("documentNumber", documentNumber))

		return nil, domainerrors.ErrDocumentAlreadyRegistered.WrapMessage("document number " + documentNumber)
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to check document number")
	}

	phone := entity.NormalizePhone(input.Phone)
	if !entity.ValidPhone(phone) {
		srv.log(ctx).Warn("Invalid phone format on profile creation", slog.String("phone", input.Phone))

		return nil, domainerrors.ErrInvalidPhoneFormat
	}

	if _, err := srv.profileRepo.FindByPhone(ctx, phone); err == nil {
		srv.log(ctx).Warn("Duplicate phone on profile creation", slog.String("phone", phone))

		return nil, domainerrors.ErrPhoneAlreadyRegistered
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to check phone")
	}

	profile := &entity.Profile{
		IDUser:         idUser,
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		DocumentType:   strings.TrimSpace(input.DocumentType),
		DocumentNumber: documentNumber,
		Phone:          phone,
		Address:        strings.TrimSpace(input.Address),
	}

	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to create profile", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("Profile created", slog.Any("profileID", profile.IDProfile), slog.Any("userID", profile.IDUser))

	return profile, nil
}

// UpdateProfile applies a partial update to the profile owned by userID.
// Fields absent from the input keep their stored value; a changed phone is
// re-validated and re-checked for conflicts with other owners.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	existing, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("user " + userID.String())
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	if input.Phone != nil {
		phone := entity.NormalizePhone(*input.Phone)
		if !entity.ValidPhone(phone) {
			srv.log(ctx).Warn("Invalid phone format on profile update", slog.String("phone", *input.Phone))

			return nil, domainerrors.ErrInvalidPhoneFormat
		}

		if phone != existing.Phone {
			owner, err := srv.profileRepo.FindByPhone(ctx, phone)
			if err == nil && owner.IDUser != userID {
				srv.log(ctx).Warn("Phone already owned by another user", slog.String("phone", phone))

				return nil, domainerrors.ErrPhoneAlreadyRegistered.WrapMessage("phone registered by another user")
			}
			if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
				return nil, errors.Wrap(err, "failed to check phone")
			}
		}

		existing.Phone = phone
	}

	if input.FirstName != nil {
		existing.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		existing.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Address != nil {
		existing.Address = strings.TrimSpace(*input.Address)
	}
	if input.MonthlyIncome != nil {
		if *input.MonthlyIncome < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("monthly_income must be non-negative")
		}
		existing.MonthlyIncome = input.MonthlyIncome
	}

	if err := srv.profileRepo.Update(ctx, existing); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	// Re-fetch so callers always see the full stored row, not whatever the
	// storage layer echoed back for the write.
	updated, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

// GetProfile retrieves a profile by its generated identifier.
func (srv *profileService) GetProfile(ctx context.Context, id string) (*entity.Profile, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domainerrors.RequiredFieldError("id")
	}

	profileID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		// An unparseable id can never match a stored profile.
		return nil, domainerrors.ErrProfileNotFound.WrapMessage("id " + id)
	}

	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("id " + id)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// GetProfileByPhone retrieves a profile by phone number, accepting either
// the canonical +57 form or ten bare digits.
func (srv *profileService) GetProfileByPhone(ctx context.Context, phone string) (*entity.Profile, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, domainerrors.RequiredFieldError("phone")
	}

	normalized := entity.NormalizePhone(phone)

	profile, err := srv.profileRepo.FindByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("phone " + normalized)
		}

		return nil, errors.Wrap(err, "failed to find profile by phone")
	}

	return profile, nil
}

// GetProfileByDocumentNumber retrieves a profile by document number.
func (srv *profileService) GetProfileByDocumentNumber(ctx context.Context, documentNumber string) (*entity.Profile, error) {
	if strings.TrimSpace(documentNumber) == "" {
		return nil, domainerrors.RequiredFieldError("document_number")
	}

	profile, err := srv.profileRepo.FindByDocumentNumber(ctx, strings.TrimSpace(documentNumber))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("document " + documentNumber)
		}

		return nil, errors.Wrap(err, "failed to find profile by document")
	}

	return profile, nil
}

// GetAllProfiles retrieves every profile ordered by first name ascending.
func (srv *profileService) GetAllProfiles(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	srv.log(ctx).Debug("Profiles listed", slog.Int("count", len(profiles)))

	return profiles, nil
}

// ValidatePhone reports whether a phone number is still available. The
// endpoint contract is to never fail, so any lookup error counts as
// available; only a confirmed hit reports the number as taken.
func (srv *profileService) ValidatePhone(ctx context.Context, phone string) *usecase.AvailabilityResult {
	normalized := entity.NormalizePhone(phone)

	if _, err := srv.profileRepo.FindByPhone(ctx, normalized); err == nil {
		srv.log(ctx).Warn("Duplicate phone detected", slog.String("phone", normalized))

		return &usecase.AvailabilityResult{
			Available: false,
			Message:   "this phone number is already registered",
		}
	}

	return &usecase.AvailabilityResult{
		Available: true,
		Message:   "the phone number is available",
	}
}

// ValidateDocumentNumber reports whether a document number is still
// available, with the same never-fail contract as ValidatePhone.
func (srv *profileService) ValidateDocumentNumber(ctx context.Context, documentNumber string) *usecase.AvailabilityResult {
	if _, err := srv.profileRepo.FindByDocumentNumber(ctx, strings.TrimSpace(documentNumber)); err == nil {
		srv.log(ctx).Warn("Duplicate document number detected", slog.String("documentNumber", documentNumber))

		return &usecase.AvailabilityResult{
			Available: false,
			Message:   "this document number is already registered",
		}
	}

	return &usecase.AvailabilityResult{
		Available: true,
		Message:   "the document number is available",
	}
}
