package postgres

import (
	"context"
	"fmt"
	"time"

	"ratestack/internal/domain/entity"
	domainerrors "ratestack/internal/domain/errors"
	"ratestack/internal/domain/repository"
	"ratestack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements repository.StoreRepository using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// Create persists a new store. The unique index on email turns duplicates
// into a domain conflict error.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStoreEmailAlreadyExists.WrapMessage("store email already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt

	return nil
}

// FindByID retrieves a single store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&storeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

// ListByOwner returns the stores owned by the given user in natural order.
func (repo *storeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error) {
	var storeMs []*model.StoreModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&storeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores by owner")
	}

	stores := make([]*entity.Store, 0, len(storeMs))
	for _, storeM := range storeMs {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// storeStatsRow is the scan target for the aggregate listing query.
type storeStatsRow struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Address       string
	OwnerID       *uuid.UUID
	CreatedAt     time.Time
	AverageRating float64
	TotalRatings  int64
}

// ListWithStats returns stores matching the query, each joined with its
// rating average and count in a single grouped query. All filter values are
// bound parameters; the ORDER BY column comes from the closed sort enum.
func (repo *storeRepository) ListWithStats(ctx context.Context, query repository.StoreQuery) ([]*repository.StoreWithStats, error) {
	tx := repo.db.WithContext(ctx).
		Table("stores AS s").
		Select("s.id, s.name, s.email, s.address, s.owner_id, s.created_at, " +
			"COALESCE(AVG(r.value), 0) AS average_rating, COUNT(r.id) AS total_ratings").
		Joins("LEFT JOIN ratings AS r ON r.store_id = s.id")

	if query.Filter.Name != "" {
		tx = tx.Where("s.name ILIKE ?", "%"+query.Filter.Name+"%")
	}
	if query.Filter.Email != "" {
		tx = tx.Where("s.email ILIKE ?", "%"+query.Filter.Email+"%")
	}
	if query.Filter.Address != "" {
		tx = tx.Where("s.address ILIKE ?", "%"+query.Filter.Address+"%")
	}

	var rows []storeStatsRow
	err := tx.Group("s.id").
		Order(storeOrderClause(query.Sort, query.Order)).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores with stats")
	}

	results := make([]*repository.StoreWithStats, 0, len(rows))
	for _, row := range rows {
		results = append(results, &repository.StoreWithStats{
			Store: entity.Store{
				ID:        row.ID,
				Name:      row.Name,
				Email:     row.Email,
				Address:   row.Address,
				OwnerID:   row.OwnerID,
				CreatedAt: row.CreatedAt,
			},
			Stats: entity.RatingStats{
				Average: row.AverageRating,
				Count:   row.TotalRatings,
			},
		})
	}

	return results, nil
}

// Count returns the total number of stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

// storeOrderClause maps the sort enum onto a store column. Ordering always
// applies to the store's own columns, never to the derived aggregate, with
// id as a stable tie-breaker.
func storeOrderClause(field repository.StoreSortField, order repository.SortOrder) string {
	column := "name"
	switch field {
	case repository.StoreSortName, repository.StoreSortEmail, repository.StoreSortAddress:
		column = string(field)
	}

	direction := "ASC"
	if order == repository.OrderDesc {
		direction = "DESC"
	}

	return fmt.Sprintf("s.%s %s, s.id ASC", column, direction)
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Address:   data.Address,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
	}
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:      data.ID,
		Name:    data.Name,
		Email:   data.Email,
		Address: data.Address,
		OwnerID: data.OwnerID,
	}
}
