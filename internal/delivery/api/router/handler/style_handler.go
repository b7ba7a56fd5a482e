package handler

import (
	"log/slog"
	"net/http"

	"biolink/internal/delivery/api/middleware"
	"biolink/internal/delivery/api/response"
	"biolink/internal/domain/entity"
	"biolink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StyleHandlerParams holds dependencies for StyleHandler, injected by Fx.
type StyleHandlerParams struct {
	fx.In

	StyleUC usecase.StyleUsecase
	Logger  *slog.Logger
}

// StyleHandler serves the template catalog, the user override and style previews
type StyleHandler struct {
	styleUC usecase.StyleUsecase
	logger  *slog.Logger
}

// NewStyleHandler is the constructor for StyleHandler
func NewStyleHandler(params StyleHandlerParams) *StyleHandler {
	return &StyleHandler{
		styleUC: params.StyleUC,
		logger:  params.Logger,
	}
}

// StyleFieldsRequest carries the style fields shared by override updates and draft previews.
// Omitted fields are left unset.
type StyleFieldsRequest struct {
	TemplateID    *string `json:"template_id" validate:"omitempty,max=64"`
	ButtonStyle   *string `json:"button_style" validate:"omitempty,max=32"`
	FontFamily    *string `json:"font_family" validate:"omitempty,max=32"`
	ThemeColor    *string `json:"theme_color" validate:"omitempty,max=32"`
	AnimationType *string `json:"animation_type" validate:"omitempty,max=32"`
	CustomColor   *string `json:"custom_color" validate:"omitempty,hexcolor"`
	GradientFrom  *string `json:"gradient_from" validate:"omitempty,hexcolor"`
	GradientTo    *string `json:"gradient_to" validate:"omitempty,hexcolor"`
}

// ListTemplates returns the template catalog
func (h *StyleHandler) ListTemplates(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.styleUC.ListTemplates())
}

// GetTemplateOverride returns the caller's template override
func (h *StyleHandler) GetTemplateOverride(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	override, err := h.styleUC.GetTemplateOverride(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, override)
}

// UpdateTemplateOverride creates or updates the caller's template override
func (h *StyleHandler) UpdateTemplateOverride(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StyleFieldsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid template input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	override, err := h.styleUC.UpdateTemplateOverride(c.Request().Context(), userID, &usecase.TemplateOverrideInput{
		TemplateID:    req.TemplateID,
		ButtonStyle:   req.ButtonStyle,
		FontFamily:    req.FontFamily,
		ThemeColor:    req.ThemeColor,
		AnimationType: req.AnimationType,
		CustomColor:   req.CustomColor,
		GradientFrom:  req.GradientFrom,
		GradientTo:    req.GradientTo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, override)
}

// GetEffectiveStyle returns the resolved style of the stored configuration
func (h *StyleHandler) GetEffectiveStyle(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	style, err := h.styleUC.GetEffectiveStyle(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, style)
}

// PreviewTemplate resolves a catalog template against the caller's stored customization
func (h *StyleHandler) PreviewTemplate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	style, err := h.styleUC.PreviewTemplate(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, style)
}

// PreviewDraft resolves unsaved editor state on top of the stored configuration
func (h *StyleHandler) PreviewDraft(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StyleFieldsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid draft input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	style, err := h.styleUC.PreviewDraft(c.Request().Context(), userID, &entity.StyleDraft{
		TemplateID:    req.TemplateID,
		ButtonStyle:   req.ButtonStyle,
		FontFamily:    req.FontFamily,
		ThemeColor:    req.ThemeColor,
		AnimationType: req.AnimationType,
		CustomColor:   req.CustomColor,
		GradientFrom:  req.GradientFrom,
		GradientTo:    req.GradientTo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, style)
}
