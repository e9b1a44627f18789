package handler

import (
	"time"

	"github.com/google/uuid"

	"ratestack/internal/domain/entity"
	"ratestack/internal/usecase"
)

// Wire-level view models. Usecase outputs are mapped here so the JSON
// surface stays explicit and never leaks internal fields such as the
// password hash.

type userView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// loginUserView is the identity block returned on login. It omits the
// address on purpose; the client only needs who logged in and as what.
type loginUserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type loginView struct {
	Token string        `json:"token"`
	User  loginUserView `json:"user"`
}

type storeSummaryView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Address string    `json:"address"`
}

type userDetailView struct {
	userView
	Stores []storeSummaryView `json:"stores,omitempty"`
}

type storeView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	OverallRating string    `json:"overallRating"`
	TotalRatings  int64     `json:"totalRatings"`
	UserRating    *int      `json:"userRating,omitempty"`
}

type adminStoreView struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Address       string     `json:"address"`
	OwnerID       *uuid.UUID `json:"ownerId"`
	AverageRating string     `json:"averageRating"`
	TotalRatings  int64      `json:"totalRatings"`
}

type adminSummaryView struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

type raterView struct {
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Rating  int       `json:"rating"`
	RatedAt time.Time `json:"ratedAt"`
}

type ownerDashboardView struct {
	Store         storeSummaryView `json:"store"`
	AverageRating string           `json:"averageRating"`
	TotalRatings  int64            `json:"totalRatings"`
	Raters        []raterView      `json:"raters"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Address:   user.Address,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

func toUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

func toStoreSummaryView(store *entity.Store) storeSummaryView {
	return storeSummaryView{
		ID:      store.ID,
		Name:    store.Name,
		Email:   store.Email,
		Address: store.Address,
	}
}

func toStoreViews(rows []*usecase.StoreView) []storeView {
	views := make([]storeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, storeView{
			ID:            row.ID,
			Name:          row.Name,
			Address:       row.Address,
			OverallRating: row.OverallRating,
			TotalRatings:  row.TotalRatings,
			UserRating:    row.UserRating,
		})
	}

	return views
}

func toAdminStoreViews(rows []*usecase.AdminStoreView) []adminStoreView {
	views := make([]adminStoreView, 0, len(rows))
	for _, row := range rows {
		views = append(views, adminStoreView{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			Address:       row.Address,
			OwnerID:       row.OwnerID,
			AverageRating: row.AverageRating,
			TotalRatings:  row.TotalRatings,
		})
	}

	return views
}

func toRaterViews(raters []*usecase.RaterView) []raterView {
	views := make([]raterView, 0, len(raters))
	for _, rater := range raters {
		views = append(views, raterView{
			Name:    rater.Name,
			Email:   rater.Email,
			Rating:  rater.Rating,
			RatedAt: rater.RatedAt,
		})
	}

	return views
}
