package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ratestack/internal/domain/entity"
	"ratestack/internal/domain/repository"
	mockRepo "ratestack/internal/mocks/repository"
	"ratestack/internal/usecase"
)

// ratingServiceFixtures holds all test dependencies for rating service tests.
type ratingServiceFixtures struct {
	service    usecase.RatingUsecase
	ratingRepo *mockRepo.MockRatingRepository
	storeRepo  *mockRepo.MockStoreRepository
}

func createTestRatingService(t *testing.T) ratingServiceFixtures {
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRatingService(RatingServiceParams{
		RatingRepo: ratingRepo,
		StoreRepo:  storeRepo,
		Logger:     logger,
	})

	return ratingServiceFixtures{
		service:    service,
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
	}
}

func TestRatingService_Submit_FirstRatingReportsCreated(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	fx.storeRepo.On("FindByID", ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
	fx.ratingRepo.On("FindByUserAndStore", ctx, userID, storeID).Return(nil, repository.ErrRatingNotFound)
	fx.ratingRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.Rating")).Return(nil)

	output, err := fx.service.Submit(ctx, userID, storeID, &usecase.SubmitRatingInput{Value: 4})

	require.NoError(t, err)
	assert.True(t, output.Created)
}

func TestRatingService_Submit_ResubmissionReportsUpdated(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	existing := &entity.Rating{ID: uuid.New(), UserID: userID, StoreID: storeID, Value: 4}

	fx.storeRepo.On("FindByID", ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
	fx.ratingRepo.On("FindByUserAndStore", ctx, userID, storeID).Return(existing, nil)

	var upserted *entity.Rating
	fx.ratingRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.Rating")).
		Run(func(args mock.Arguments) {
			upserted = args.Get(1).(*entity.Rating)
		}).
		Return(nil)

	output, err := fx.service.Submit(ctx, userID, storeID, &usecase.SubmitRatingInput{Value: 5})

	require.NoError(t, err)
	assert.False(t, output.Created)

	// The new value replaces the old one for the same (user, store) pair.
	require.NotNil(t, upserted)
	assert.Equal(t, userID, upserted.UserID)
	assert.Equal(t, storeID, upserted.StoreID)
	assert.Equal(t, 5, upserted.Value)
}

func TestRatingService_Submit_ValueOutOfRange(t *testing.T) {
	for _, value := range []int{0, -1, 6} {
		fx := createTestRatingService(t)

		output, err := fx.service.Submit(context.Background(), uuid.New(), uuid.New(),
			&usecase.SubmitRatingInput{Value: value})

		require.Error(t, err)
		assert.Nil(t, output)
		appErr := requireAppError(t, err, "VALIDATION_FAILED")
		assert.Equal(t, "Rating must be between 1 and 5", appErr.Message())
	}
}

func TestRatingService_Submit_StoreMissing(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.On("FindByID", ctx, storeID).Return(nil, repository.ErrStoreNotFound)

	output, err := fx.service.Submit(ctx, uuid.New(), storeID, &usecase.SubmitRatingInput{Value: 3})

	require.Error(t, err)
	assert.Nil(t, output)
	requireAppError(t, err, "STORE_NOT_FOUND")
}
