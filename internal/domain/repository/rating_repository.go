package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ratestack/internal/domain/entity"
	"ratestack/internal/errors"
)

// ErrRatingNotFound is returned when a user has no rating for a store.
var ErrRatingNotFound = errors.New("rating not found")

// Rater is one entry of a store's rating history as shown to its owner.
type Rater struct {
	Name    string
	Email   string
	Value   int
	RatedAt time.Time
}

// RatingRepository persists ratings and computes their aggregates. The
// backing table carries a unique index on (user_id, store_id); that index,
// not application-level checks, is what guarantees the one-rating-per-pair
// invariant under concurrency.
type RatingRepository interface {
	// Upsert writes a rating as a single atomic insert-or-update keyed by
	// (UserID, StoreID). A concurrent duplicate insert resolves inside the
	// database as an update.
	Upsert(ctx context.Context, rating *entity.Rating) error

	// FindByUserAndStore retrieves the caller's rating for a store, or
	// ErrRatingNotFound.
	FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error)

	// ValuesByUser returns all of a user's rating values keyed by store id.
	ValuesByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error)

	// StatsForStore returns the average and count over a store's ratings.
	// A store with no ratings yields a zero-value aggregate.
	StatsForStore(ctx context.Context, storeID uuid.UUID) (*entity.RatingStats, error)

	// ListRaters returns the store's rating history joined with rater
	// identity, most recent first.
	ListRaters(ctx context.Context, storeID uuid.UUID) ([]*Rater, error)

	// Count returns the total number of ratings.
	Count(ctx context.Context) (int64, error)
}
