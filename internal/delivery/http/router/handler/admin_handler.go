package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"ratestack/internal/delivery/http/response"
	domainerrors "ratestack/internal/domain/errors"
	"ratestack/internal/usecase"
)

// AdminHandler holds dependencies for the administrator-only endpoints.
type AdminHandler struct {
	accounts  usecase.AccountUsecase
	stores    usecase.StoreUsecase
	dashboard usecase.DashboardUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	accounts usecase.AccountUsecase,
	stores usecase.StoreUsecase,
	dashboard usecase.DashboardUsecase,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		accounts:  accounts,
		stores:    stores,
		dashboard: dashboard,
		logger:    logger,
	}
}

// Dashboard returns the platform-wide counters.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	summary, err := h.dashboard.AdminSummary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	view := adminSummaryView{
		TotalUsers:   summary.TotalUsers,
		TotalStores:  summary.TotalStores,
		TotalRatings: summary.TotalRatings,
	}

	return response.Success(c, http.StatusOK, view, "Dashboard loaded")
}

// CreateUser registers an account with an explicit role.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var input *usecase.CreateUserInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.accounts.CreateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated,
		map[string]uuid.UUID{"userId": user.ID}, "User created successfully")
}

// ListUsers returns the filtered, sorted user listing.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	input := &usecase.ListUsersInput{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
		Role:    c.QueryParam("role"),
		Sort:    c.QueryParam("sort"),
		Order:   c.QueryParam("order"),
	}

	users, err := h.accounts.ListUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "Users listed")
}

// GetUser returns one user; OWNER accounts come with their stores attached.
func (h *AdminHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid user id")
	}

	detail, err := h.accounts.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	view := userDetailView{userView: toUserView(detail.User)}
	for _, store := range detail.Stores {
		view.Stores = append(view.Stores, toStoreSummaryView(store))
	}

	return response.Success(c, http.StatusOK, view, "User loaded")
}

// CreateStore registers a new store, optionally bound to an OWNER account.
func (h *AdminHandler) CreateStore(c echo.Context) error {
	var input *usecase.CreateStoreInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.stores.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated,
		map[string]uuid.UUID{"storeId": store.ID}, "Store created successfully")
}

// ListStores returns the admin store listing with rating aggregates.
func (h *AdminHandler) ListStores(c echo.Context) error {
	input := &usecase.ListStoresInput{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
		Sort:    c.QueryParam("sort"),
		Order:   c.QueryParam("order"),
	}

	stores, err := h.stores.ListForAdmin(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAdminStoreViews(stores), "Stores listed")
}
