package handler

import (
	"log/slog"
	"net/http"

	"locust/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the map dashboard snapshot.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// GetDashboard handles GET /api/dashboard.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.dashboardUC.GetDashboard(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboard)
}
