package usecase

import (
	"context"

	"github.com/google/uuid"

	"ratestack/internal/domain/entity"
)

// CreateStoreInput defines the data an administrator supplies to register a
// store. OwnerID is optional; when present it must reference an OWNER user.
type CreateStoreInput struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required"`
	Address string  `json:"address" validate:"required"`
	OwnerID *string `json:"ownerId"`
}

// ListStoresInput narrows and orders a store listing. Raw sort/order
// strings are normalized against the allow-list; unknown values fall back
// to name ascending. Email filtering/sorting is honored only on the
// admin-facing path.
type ListStoresInput struct {
	Name    string
	Email   string
	Address string
	Sort    string
	Order   string
}

// StoreView is one row of the user-facing store listing: the store's public
// fields plus its rating aggregate and the caller's own rating, if any.
type StoreView struct {
	ID            uuid.UUID
	Name          string
	Address       string
	OverallRating string
	TotalRatings  int64
	UserRating    *int
}

// AdminStoreView is one row of the admin-facing store listing. It exposes
// the contact email and owner reference the public view omits.
type AdminStoreView struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Address       string
	OwnerID       *uuid.UUID
	AverageRating string
	TotalRatings  int64
}

// StoreUsecase defines the interface for store listing and management
// operations.
type StoreUsecase interface {
	// Create registers a new store (admin only).
	Create(ctx context.Context, input *CreateStoreInput) (*entity.Store, error)

	// ListForUser returns stores with aggregates and the caller's own
	// ratings attached.
	ListForUser(ctx context.Context, callerID uuid.UUID, input *ListStoresInput) ([]*StoreView, error)

	// ListForAdmin returns stores with aggregates, including email and
	// owner columns.
	ListForAdmin(ctx context.Context, input *ListStoresInput) ([]*AdminStoreView, error)
}
