// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"ratestack/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required for public self-registration.
// Signups always produce a USER account.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordInput defines the data required to change the caller's password.
type UpdatePasswordInput struct {
	Password string `json:"password" validate:"required"`
}

// CreateUserInput defines the data an administrator supplies to create an
// account with an explicit role.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// ListUsersInput narrows and orders the admin user listing. Raw sort/order
// strings are normalized against the allow-list; unknown values fall back
// to name ascending.
type ListUsersInput struct {
	Name    string
	Email   string
	Address string
	Role    string
	Sort    string
	Order   string
}

// --- Output DTOs ---

// LoginOutput returns the bearer token and the user's public identity.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserDetail pairs a user with the stores they own. Stores is only
// populated for OWNER accounts.
type UserDetail struct {
	User   *entity.User
	Stores []*entity.Store
}

// AccountUsecase defines the interface for identity and account management
// operations. This is the contract the delivery layer depends on.
type AccountUsecase interface {
	// Signup registers a USER account from the public signup form.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// UpdatePassword replaces the caller's own credential.
	UpdatePassword(ctx context.Context, userID uuid.UUID, input *UpdatePasswordInput) error

	// CreateUser registers an account with an explicit role (admin only).
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// ListUsers returns the filtered, sorted user listing (admin only).
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)

	// GetUser returns one user with their owned stores (admin only).
	GetUser(ctx context.Context, id uuid.UUID) (*UserDetail, error)
}
