package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the person-identity record attached one-to-one to a user
// account. IDProfile and IDUser are assigned at creation and never change;
// Phone is always stored in the canonical +57 form.
type Profile struct {
	IDProfile      uuid.UUID `json:"id_profile"`
	IDUser         uuid.UUID `json:"id_user"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	MonthlyIncome  *float64  `json:"monthly_income,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
