// Package model holds the GORM persistence models mirroring the database
// tables. They are mapped to and from the pure domain entities by the
// repository layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Constraint names referenced by the repository layer when translating
// unique violations into domain conflicts.
const (
	ProfilePhoneConstraint    = "uni_profiles_phone"
	ProfileDocumentConstraint = "uni_profiles_document_number"
	UserEmailConstraint       = "uni_users_email"
)

// ProfileModel mirrors the 'profiles' table. PostgreSQL generates the
// primary key via gen_random_uuid().
type ProfileModel struct {
	IDProfile      uuid.UUID `gorm:"column:id_profile;type:uuid;primaryKey;default:gen_random_uuid()"`
	IDUser         uuid.UUID `gorm:"column:id_user;type:uuid;not null"`
	FirstName      string    `gorm:"type:varchar(100);not null"`
	LastName       string    `gorm:"type:varchar(100);not null"`
	DocumentType   string    `gorm:"type:varchar(20);not null"`
	DocumentNumber string    `gorm:"type:text;not null;unique"`
	Phone          string    `gorm:"type:text;not null;unique"`
	Address        string    `gorm:"type:text;not null"`
	MonthlyIncome  *float64  `gorm:"type:decimal(12,2)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "user_service.profiles"
}
