package postgres

import (
	"context"
	"time"

	"ratestack/internal/domain/entity"
	domainerrors "ratestack/internal/domain/errors"
	"ratestack/internal/domain/repository"
	"ratestack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements repository.RatingRepository using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes a rating as a single INSERT ... ON CONFLICT DO UPDATE keyed
// by the (user_id, store_id) unique index. Two concurrent submissions for
// the same pair therefore resolve inside the database; the application
// never sees a duplicate-key failure on this path.
func (repo *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":      ratingM.Value,
				"updated_at": time.Now(),
			}),
		}).
		Create(ratingM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating value out of range")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// FindByUserAndStore retrieves the caller's rating for a store.
func (repo *ratingRepository) FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&ratingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return toRatingDomain(&ratingM), nil
}

// ValuesByUser returns all of a user's rating values keyed by store id.
func (repo *ratingRepository) ValuesByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error) {
	var rows []struct {
		StoreID uuid.UUID
		Value   int
	}
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("store_id, value").
		Where("user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user ratings")
	}

	values := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		values[row.StoreID] = row.Value
	}

	return values, nil
}

// StatsForStore returns the average and count over a store's ratings. A
// store with no ratings yields {0, 0}.
func (repo *ratingRepository) StatsForStore(ctx context.Context, storeID uuid.UUID) (*entity.RatingStats, error) {
	var row struct {
		AverageRating float64
		TotalRatings  int64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COALESCE(AVG(value), 0) AS average_rating, COUNT(*) AS total_ratings").
		Where("store_id = ?", storeID).
		Scan(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute rating stats")
	}

	return &entity.RatingStats{Average: row.AverageRating, Count: row.TotalRatings}, nil
}

// ListRaters returns the store's rating history joined with rater identity,
// most recent first.
func (repo *ratingRepository) ListRaters(ctx context.Context, storeID uuid.UUID) ([]*repository.Rater, error) {
	var rows []struct {
		Name    string
		Email   string
		Value   int
		RatedAt time.Time
	}
	err := repo.db.WithContext(ctx).
		Table("ratings AS r").
		Select("u.name, u.email, r.value, r.created_at AS rated_at").
		Joins("JOIN users AS u ON u.id = r.user_id").
		Where("r.store_id = ?", storeID).
		Order("r.created_at DESC, r.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list raters")
	}

	raters := make([]*repository.Rater, 0, len(rows))
	for _, row := range rows {
		raters = append(raters, &repository.Rater{
			Name:    row.Name,
			Email:   row.Email,
			Value:   row.Value,
			RatedAt: row.RatedAt,
		})
	}

	return raters, nil
}

// Count returns the total number of ratings.
func (repo *ratingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RatingModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count ratings")
	}

	return count, nil
}

// --- Mapper Functions ---

// toRatingDomain converts a GORM RatingModel to a domain Rating entity.
func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:        data.ID,
		UserID:    data.UserID,
		StoreID:   data.StoreID,
		Value:     data.Value,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRatingDomain converts a domain Rating entity to a GORM RatingModel.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:      data.ID,
		UserID:  data.UserID,
		StoreID: data.StoreID,
		Value:   data.Value,
	}
}
