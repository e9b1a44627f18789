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

// StoreHandler holds dependencies for the authenticated store endpoints.
type StoreHandler struct {
	stores  usecase.StoreUsecase
	ratings usecase.RatingUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(stores usecase.StoreUsecase, ratings usecase.RatingUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		stores:  stores,
		ratings: ratings,
		logger:  logger,
	}
}

// ListStores returns the public store listing with each store's aggregate
// and the caller's own rating attached.
func (h *StoreHandler) ListStores(c echo.Context) error {
	callerID, err := CallerID(c)
	if err != nil {
		return err
	}

	input := &usecase.ListStoresInput{
		Name:    c.QueryParam("name"),
		Address: c.QueryParam("address"),
		Sort:    c.QueryParam("sort"),
		Order:   c.QueryParam("order"),
	}

	stores, err := h.stores.ListForUser(c.Request().Context(), callerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreViews(stores), "Stores listed")
}

// SubmitRating records the caller's rating of a store. A resubmission for
// the same store overwrites the earlier value; the message tells the two
// apart.
func (h *StoreHandler) SubmitRating(c echo.Context) error {
	callerID, err := CallerID(c)
	if err != nil {
		return err
	}

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid store id")
	}

	var input *usecase.SubmitRatingInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	output, err := h.ratings.Submit(c.Request().Context(), callerID, storeID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Rating updated successfully"
	if output.Created {
		message = "Rating submitted successfully"
	}

	return response.Success(c, http.StatusOK, nil, message)
}
