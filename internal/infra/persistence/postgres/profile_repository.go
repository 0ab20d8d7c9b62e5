// Package postgres implements the domain repository interfaces on top of
// GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"
	"userhub/internal/errors"
	"userhub/internal/infra/persistence/model"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a profile repository backed by PostgreSQL.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	record := fromProfileEntity(profile)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return translateProfileWriteError(err)
	}

	*profile = *toProfileEntity(record)

	return nil
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return r.findOne(ctx, "id_profile = ?", id)
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return r.findOne(ctx, "id_user = ?", userID)
}

func (r *profileRepository) FindByPhone(ctx context.Context, phone string) (*entity.Profile, error) {
	return r.findOne(ctx, "phone = ?", phone)
}

func (r *profileRepository) FindByDocumentNumber(ctx context.Context, documentNumber string) (*entity.Profile, error) {
	return r.findOne(ctx, "document_number = ?", documentNumber)
}

func (r *profileRepository) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	var records []model.ProfileModel
	if err := r.db.WithContext(ctx).
		Order("first_name ASC").
		Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(records))
	for i := range records {
		profiles = append(profiles, toProfileEntity(&records[i]))
	}

	return profiles, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	record := fromProfileEntity(profile)
	result := r.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id_profile = ?", record.IDProfile).
		Updates(map[string]any{
			"first_name":     record.FirstName,
			"last_name":      record.LastName,
			"phone":          record.Phone,
			"address":        record.Address,
			"monthly_income": record.MonthlyIncome,
		})
	if result.Error != nil {
		return translateProfileWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (r *profileRepository) findOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var record model.ProfileModel
	err := r.db.WithContext(ctx).Where(query, arg).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to query profile")
	}

	return toProfileEntity(&record), nil
}

// translateProfileWriteError maps unique-constraint violations onto the
// matching domain conflict so a lost check-then-insert race still yields
// the right response.
func translateProfileWriteError(err error) error {
	if !isUniqueConstraintViolation(err) {
		return errors.Wrap(err, "failed to write profile")
	}

	switch violatedConstraint(err) {
	case model.ProfileDocumentConstraint:
		return domainerrors.ErrDocumentAlreadyRegistered
	case model.ProfilePhoneConstraint:
		return domainerrors.ErrPhoneAlreadyRegistered
	default:
		return domainerrors.ErrConflict
	}
}

func fromProfileEntity(profile *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		IDProfile:      profile.IDProfile,
		IDUser:         profile.IDUser,
		FirstName:      profile.FirstName,
		LastName:       profile.LastName,
		DocumentType:   profile.DocumentType,
		DocumentNumber: profile.DocumentNumber,
		Phone:          profile.Phone,
		Address:        profile.Address,
		MonthlyIncome:  profile.MonthlyIncome,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
}

func toProfileEntity(record *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		IDProfile:      record.IDProfile,
		IDUser:         record.IDUser,
		FirstName:      record.FirstName,
		LastName:       record.LastName,
		DocumentType:   record.DocumentType,
		DocumentNumber: record.DocumentNumber,
		Phone:          record.Phone,
		Address:        record.Address,
		MonthlyIncome:  record.MonthlyIncome,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}
