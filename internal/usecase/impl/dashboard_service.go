package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "ratestack/internal/delivery/context"
	domainerrors "ratestack/internal/domain/errors"
	"ratestack/internal/domain/repository"
	"ratestack/internal/errors"
	"ratestack/internal/usecase"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		userRepo:   params.UserRepo,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AdminSummary returns the platform-wide counters.
func (srv *dashboardService) AdminSummary(ctx context.Context) (*usecase.AdminSummary, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totalStores, err := srv.storeRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}

	totalRatings, err := srv.ratingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ratings")
	}

	return &usecase.AdminSummary{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

// OwnerSummary returns the caller's store with its rating aggregate and
// history, most recent first.
func (srv *dashboardService) OwnerSummary(ctx context.Context, ownerID uuid.UUID) (*usecase.OwnerSummary, error) {
	stores, err := srv.storeRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned stores")
	}
	if len(stores) == 0 {
		return nil, domainerrors.ErrOwnerStoreNotFound
	}

	// At most one store per owner is supported in scope; the first in
	// natural order wins if data ever holds more.
	store := stores[0]

	stats, err := srv.ratingRepo.StatsForStore(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute store stats")
	}

	raters, err := srv.ratingRepo.ListRaters(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list raters")
	}

	raterViews := make([]*usecase.RaterView, 0, len(raters))
	for _, rater := range raters {
		raterViews = append(raterViews, &usecase.RaterView{
			Name:    rater.Name,
			Email:   rater.Email,
			Rating:  rater.Value,
			RatedAt: rater.RatedAt,
		})
	}

	srv.log(ctx).Debug("Owner summary computed",
		slog.Any("ownerID", ownerID),
		slog.Any("storeID", store.ID),
		slog.Int64("totalRatings", stats.Count),
	)

	return &usecase.OwnerSummary{
		Store:         store,
		AverageRating: formatAverage(stats.Average),
		TotalRatings:  stats.Count,
		Raters:        raterViews,
	}, nil
}
