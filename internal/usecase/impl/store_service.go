package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "ratestack/internal/delivery/context"
	"ratestack/internal/domain/entity"
	domainerrors "ratestack/internal/domain/errors"
	"ratestack/internal/domain/repository"
	"ratestack/internal/domain/validation"
	"ratestack/internal/errors"
	"ratestack/internal/usecase"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo  repository.StoreRepository
	userRepo   repository.UserRepository
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo  repository.StoreRepository
	UserRepo   repository.UserRepository
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo:  params.StoreRepo,
		userRepo:   params.UserRepo,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new store on behalf of an administrator.
func (srv *storeService) Create(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	if input.Name == "" || input.Email == "" || input.Address == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Name, email, and address are required")
	}
	if !validation.ValidEmail(input.Email) {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid email format")
	}
	if !validation.ValidAddress(input.Address) {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Address must be 400 characters or less")
	}

	ownerID, err := srv.resolveOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	store := &entity.Store{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		OwnerID: ownerID,
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Store created", slog.Any("storeID", store.ID))

	return store, nil
}

// resolveOwner validates the optional owner reference: it must parse as an
// id and point at an existing OWNER account.
func (srv *storeService) resolveOwner(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	ownerID, err := uuid.Parse(*raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid owner id")
	}

	owner, err := srv.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrValidationFailed.WithMessage("Owner does not exist")
		}

		return nil, errors.Wrap(err, "failed to resolve store owner")
	}
	if owner.Role != entity.RoleOwner {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Owner must have the OWNER role")
	}

	return &ownerID, nil
}

// ListForUser returns stores with aggregates, with the caller's own rating
// attached by a second lookup keyed on the caller id. The user-facing
// variant never filters or sorts by email.
func (srv *storeService) ListForUser(ctx context.Context, callerID uuid.UUID, input *usecase.ListStoresInput) ([]*usecase.StoreView, error) {
	query := repository.StoreQuery{
		Filter: repository.StoreFilter{
			Name:    input.Name,
			Address: input.Address,
		},
		Sort:  repository.ParseStoreSortField(input.Sort, false),
		Order: repository.ParseSortOrder(input.Order),
	}

	rows, err := srv.storeRepo.ListWithStats(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	ownRatings, err := srv.ratingRepo.ValuesByUser(ctx, callerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load caller ratings")
	}

	views := make([]*usecase.StoreView, 0, len(rows))
	for _, row := range rows {
		view := &usecase.StoreView{
			ID:            row.Store.ID,
			Name:          row.Store.Name,
			Address:       row.Store.Address,
			OverallRating: formatAverage(row.Stats.Average),
			TotalRatings:  row.Stats.Count,
		}
		if value, ok := ownRatings[row.Store.ID]; ok {
			view.UserRating = &value
		}
		views = append(views, view)
	}

	return views, nil
}

// ListForAdmin returns stores with aggregates including the email and owner
// columns reserved for administrators.
func (srv *storeService) ListForAdmin(ctx context.Context, input *usecase.ListStoresInput) ([]*usecase.AdminStoreView, error) {
	query := repository.StoreQuery{
		Filter: repository.StoreFilter{
			Name:    input.Name,
			Email:   input.Email,
			Address: input.Address,
		},
		Sort:  repository.ParseStoreSortField(input.Sort, true),
		Order: repository.ParseSortOrder(input.Order),
	}

	rows, err := srv.storeRepo.ListWithStats(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	views := make([]*usecase.AdminStoreView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &usecase.AdminStoreView{
			ID:            row.Store.ID,
			Name:          row.Store.Name,
			Email:         row.Store.Email,
			Address:       row.Store.Address,
			OwnerID:       row.Store.OwnerID,
			AverageRating: formatAverage(row.Stats.Average),
			TotalRatings:  row.Stats.Count,
		})
	}

	return views, nil
}

// formatAverage renders a rating average rounded to two decimal places.
// A store with no ratings shows "0.00".
func formatAverage(average float64) string {
	return fmt.Sprintf("%.2f", average)
}
