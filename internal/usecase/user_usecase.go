package usecase

import (
	"context"

	"userhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new account.
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role,omitempty"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string       `json:"access_token"`
	User        *entity.User `json:"user"`
}

// UserUsecase defines the interface for user account operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	// RegisterUser creates a new account with a hashed password.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// GetUser retrieves an account by its identifier.
	GetUser(ctx context.Context, id string) (*entity.User, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
