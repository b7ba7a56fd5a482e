package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"biolink/internal/delivery/api/middleware"
	"biolink/internal/delivery/api/response"
	"biolink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	ClickUC usecase.ClickUsecase
	Logger  *slog.Logger
}

// AnalyticsHandler serves click statistics
type AnalyticsHandler struct {
	clickUC usecase.ClickUsecase
	logger  *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		clickUC: params.ClickUC,
		logger:  params.Logger,
	}
}

// GetLinkStats returns per-link click totals and daily buckets.
// The optional days query parameter selects the window; omitted means the default window.
func (h *AnalyticsHandler) GetLinkStats(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_STATS_WINDOW", "days must be a positive integer")
		}
		days = parsed
	}

	stats, err := h.clickUC.GetLinkStats(c.Request().Context(), userID, days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
