package impl

import (
	"context"
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

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	ratingRepo repository.RatingRepository
	storeRepo  repository.StoreRepository
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for ratingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	RatingRepo repository.RatingRepository
	StoreRepo  repository.StoreRepository
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		ratingRepo: params.RatingRepo,
		storeRepo:  params.StoreRepo,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit records the caller's rating of a store. The write itself is a
// single atomic insert-or-update keyed by the (user, store) unique index;
// the preceding read only decides whether to report the submission as new.
func (srv *ratingService) Submit(ctx context.Context, userID, storeID uuid.UUID, input *usecase.SubmitRatingInput) (*usecase.SubmitRatingOutput, error) {
	if !validation.ValidRatingValue(input.Value) {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Rating must be between 1 and 5")
	}

	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to confirm store exists")
	}

	created := false
	if _, err := srv.ratingRepo.FindByUserAndStore(ctx, userID, storeID); err != nil {
		if !errors.Is(err, repository.ErrRatingNotFound) {
			return nil, errors.Wrap(err, "failed to check existing rating")
		}
		created = true
	}

	rating := &entity.Rating{
		UserID:  userID,
		StoreID: storeID,
		Value:   input.Value,
	}
	if err := srv.ratingRepo.Upsert(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to upsert rating")
	}

	srv.log(ctx).Info("Rating submitted",
		slog.Any("userID", userID),
		slog.Any("storeID", storeID),
		slog.Int("value", input.Value),
		slog.Bool("created", created),
	)

	return &usecase.SubmitRatingOutput{Created: created}, nil
}
