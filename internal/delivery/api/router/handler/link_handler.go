package handler

import (
	"log/slog"
	"net/http"

	"biolink/internal/delivery/api/middleware"
	"biolink/internal/delivery/api/response"
	deliverycontext "biolink/internal/delivery/context"
	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LinkHandlerParams holds dependencies for LinkHandler, injected by Fx.
type LinkHandlerParams struct {
	fx.In

	LinkUC usecase.LinkUsecase
	Logger *slog.Logger
}

// LinkHandler holds dependencies for link-related handlers
type LinkHandler struct {
	linkUC usecase.LinkUsecase
	logger *slog.Logger
}

// NewLinkHandler is the constructor for LinkHandler
func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	return &LinkHandler{
		linkUC: params.LinkUC,
		logger: params.Logger,
	}
}

// LinkRequest represents the request body for creating or updating a link
type LinkRequest struct {
	Type        string  `json:"type" validate:"omitempty,oneof=general social product embed"`
	Title       string  `json:"title" validate:"required,max=200"`
	URL         string  `json:"url" validate:"required,url,max=2048"`
	Icon        string  `json:"icon" validate:"omitempty,max=64"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url,max=2048"`
	Price       float64 `json:"price" validate:"gte=0"`
	Platform    string  `json:"platform" validate:"omitempty,max=32"`
	EmbedType   string  `json:"embed_type" validate:"omitempty,max=32"`
}

// ReorderRequest represents a single drag-and-drop move
type ReorderRequest struct {
	SourceIndex      *int `json:"source_index" validate:"required,gte=0"`
	DestinationIndex *int `json:"destination_index" validate:"required,gte=0"`
}

func (req *LinkRequest) toInput() *usecase.LinkInput {
	return &usecase.LinkInput{
		Type:        entity.LinkType(req.Type),
		Title:       req.Title,
		URL:         req.URL,
		Icon:        req.Icon,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Platform:    req.Platform,
		EmbedType:   entity.EmbedType(req.EmbedType),
	}
}

// ListLinks returns the caller's links in display order
func (h *LinkHandler) ListLinks(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	links, err := h.linkUC.ListLinks(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, links)
}

// CreateLink appends a link to the caller's list
func (h *LinkHandler) CreateLink(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req LinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	link, err := h.linkUC.CreateLink(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, link)
}

// UpdateLink edits one of the caller's links
func (h *LinkHandler) UpdateLink(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid link ID")
	}

	var req LinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	link, err := h.linkUC.UpdateLink(c.Request().Context(), userID, linkID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, link)
}

// DeleteLink removes one of the caller's links
func (h *LinkHandler) DeleteLink(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid link ID")
	}

	if err := h.linkUC.DeleteLink(c.Request().Context(), userID, linkID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Link deleted successfully"})
}

// ReorderLinks moves one link. A failed save answers 409 with the order now stored,
// so the editor can replace its optimistic list.
func (h *LinkHandler) ReorderLinks(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reorder input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	result, err := h.linkUC.ReorderLinks(ctx, userID, &usecase.ReorderInput{
		SourceIndex:      *req.SourceIndex,
		DestinationIndex: *req.DestinationIndex,
	})
	if err != nil {
		if result == nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Reorder reverted", slog.Any("error", err))

		return response.AppErrorWithDetails(c, http.StatusConflict, err, domainerrors.ErrReorderFailed, result)
	}

	return response.Success(c, http.StatusOK, result)
}
