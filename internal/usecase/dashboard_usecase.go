package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ratestack/internal/domain/entity"
)

// AdminSummary is the platform-wide counter set shown on the admin
// dashboard.
type AdminSummary struct {
	TotalUsers   int64
	TotalStores  int64
	TotalRatings int64
}

// RaterView is one entry of the owner dashboard's rating history.
type RaterView struct {
	Name    string
	Email   string
	Rating  int
	RatedAt time.Time
}

// OwnerSummary is the store-scoped aggregate shown to a store's owner.
type OwnerSummary struct {
	Store         *entity.Store
	AverageRating string
	TotalRatings  int64
	Raters        []*RaterView
}

// DashboardUsecase composes global and store-scoped statistics.
type DashboardUsecase interface {
	// AdminSummary returns full-table counts (admin only).
	AdminSummary(ctx context.Context) (*AdminSummary, error)

	// OwnerSummary returns the caller's store with its rating aggregate and
	// history, most recent first. Fails with not-found when the caller owns
	// no store.
	OwnerSummary(ctx context.Context, ownerID uuid.UUID) (*OwnerSummary, error)
}
