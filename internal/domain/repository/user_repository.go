package repository

import (
	"context"

	"github.com/google/uuid"

	"ratestack/internal/domain/entity"
	"ratestack/internal/errors"
)

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows a user listing. Zero-value fields impose no
// constraint; string fields match as case-insensitive substrings.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    entity.Role
}

// UserQuery describes a filtered, sorted user listing.
type UserQuery struct {
	Filter UserFilter
	Sort   UserSortField
	Order  SortOrder
}

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// Create inserts a new user. A duplicate email surfaces as
	// domainerrors.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdatePasswordHash replaces the stored credential for a user. This is
	// the only mutation users support after creation.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// List returns users matching the query, ordered by the requested
	// column with id as the stable tie-breaker.
	List(ctx context.Context, query UserQuery) ([]*entity.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}
