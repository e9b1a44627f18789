package repository

import (
	"context"

	"github.com/google/uuid"

	"ratestack/internal/domain/entity"
	"ratestack/internal/errors"
)

// ErrStoreNotFound is returned when no store matches the lookup key.
var ErrStoreNotFound = errors.New("store not found")

// StoreFilter narrows a store listing. Zero-value fields impose no
// constraint; fields match as case-insensitive substrings.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
}

// StoreQuery describes a filtered, sorted store listing.
type StoreQuery struct {
	Filter StoreFilter
	Sort   StoreSortField
	Order  SortOrder
}

// StoreWithStats pairs a store with its rating aggregate, computed in the
// same query. Ordering applies to the store's own columns, never to the
// aggregate.
type StoreWithStats struct {
	Store entity.Store
	Stats entity.RatingStats
}

// StoreRepository persists and retrieves stores.
type StoreRepository interface {
	// Create inserts a new store. A duplicate email surfaces as
	// domainerrors.ErrStoreEmailAlreadyExists.
	Create(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a store by id, or ErrStoreNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// ListByOwner returns the stores owned by the given user, in natural
	// (id) order.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error)

	// ListWithStats returns stores matching the query, each joined with its
	// rating average and count.
	ListWithStats(ctx context.Context, query StoreQuery) ([]*StoreWithStats, error)

	// Count returns the total number of stores.
	Count(ctx context.Context) (int64, error)
}
