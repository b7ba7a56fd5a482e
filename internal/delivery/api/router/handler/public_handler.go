package handler

import (
	"log/slog"
	"net/http"

	"biolink/internal/delivery/api/middleware"
	"biolink/internal/delivery/api/response"
	deliverycontext "biolink/internal/delivery/context"
	"biolink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PublicHandlerParams holds dependencies for PublicHandler, injected by Fx.
type PublicHandlerParams struct {
	fx.In

	PublicPageUC usecase.PublicPageUsecase
	ClickUC      usecase.ClickUsecase
	Logger       *slog.Logger
}

// PublicHandler serves visitor-facing pages, QR codes and link redirects
type PublicHandler struct {
	publicPageUC usecase.PublicPageUsecase
	clickUC      usecase.ClickUsecase
	logger       *slog.Logger
}

// NewPublicHandler is the constructor for PublicHandler
func NewPublicHandler(params PublicHandlerParams) *PublicHandler {
	return &PublicHandler{
		publicPageUC: params.PublicPageUC,
		clickUC:      params.ClickUC,
		logger:       params.Logger,
	}
}

// GetPublicPage returns the rendered data of a public page
func (h *PublicHandler) GetPublicPage(c echo.Context) error {
	page, err := h.publicPageUC.GetPublicPage(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetPublicQRCode returns a PNG QR code for a public page
func (h *PublicHandler) GetPublicQRCode(c echo.Context) error {
	png, err := h.publicPageUC.GetPublicQRCode(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png, response.CachePublicQRCode)
}

// GetOwnQRCode returns a PNG QR code for the caller's public page
func (h *PublicHandler) GetOwnQRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.publicPageUC.GetOwnQRCode(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png, response.CachePrivate)
}

// RedirectLink records a click and redirects the visitor to the link target
func (h *PublicHandler) RedirectLink(c echo.Context) error {
	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "LINK_NOT_FOUND", "Link not found")
	}

	req := c.Request()
	target, err := h.clickUC.TrackClick(req.Context(), linkID, &usecase.ClickInput{
		Referrer:  req.Referer(),
		UserAgent: req.UserAgent(),
		ClientIP:  c.RealIP(),
		RequestID: deliverycontext.GetRequestID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Redirect(c, target)
}
