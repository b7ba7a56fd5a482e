package handler

import (
	"log/slog"
	"net/http"

	"biolink/internal/delivery/api/middleware"
	"biolink/internal/delivery/api/response"
	"biolink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest represents the request body for creating or updating a profile.
// Omitted fields keep their stored value.
type UpdateProfileRequest struct {
	Username      *string `json:"username" validate:"omitempty,username"`
	DisplayName   *string `json:"display_name" validate:"omitempty,max=100"`
	Bio           *string `json:"bio" validate:"omitempty,max=500"`
	AvatarURL     *string `json:"avatar_url" validate:"omitempty,url,max=2048"`
	TemplateID    *string `json:"template_id" validate:"omitempty,max=64"`
	ThemeColor    *string `json:"theme_color" validate:"omitempty,max=32"`
	ButtonStyle   *string `json:"button_style" validate:"omitempty,max=32"`
	FontFamily    *string `json:"font_family" validate:"omitempty,max=32"`
	AnimationType *string `json:"animation_type" validate:"omitempty,max=32"`
}

// GetProfile handles retrieving the caller's profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile handles creating or updating the caller's profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Username:      req.Username,
		DisplayName:   req.DisplayName,
		Bio:           req.Bio,
		AvatarURL:     req.AvatarURL,
		TemplateID:    req.TemplateID,
		ThemeColor:    req.ThemeColor,
		ButtonStyle:   req.ButtonStyle,
		FontFamily:    req.FontFamily,
		AnimationType: req.AnimationType,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
