package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"ratestack/internal/delivery/http/response"
	"ratestack/internal/usecase"
)

// OwnerHandler holds dependencies for the store-owner endpoints.
type OwnerHandler struct {
	dashboard usecase.DashboardUsecase
	logger    *slog.Logger
}

// NewOwnerHandler is the constructor for OwnerHandler, injected by Fx.
func NewOwnerHandler(dashboard usecase.DashboardUsecase, logger *slog.Logger) *OwnerHandler {
	return &OwnerHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

// Dashboard returns the caller's store with its rating aggregate and the
// ordered rating history.
func (h *OwnerHandler) Dashboard(c echo.Context) error {
	callerID, err := CallerID(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboard.OwnerSummary(c.Request().Context(), callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	view := ownerDashboardView{
		Store:         toStoreSummaryView(summary.Store),
		AverageRating: summary.AverageRating,
		TotalRatings:  summary.TotalRatings,
		Raters:        toRaterViews(summary.Raters),
	}

	return response.Success(c, http.StatusOK, view, "Dashboard loaded")
}
