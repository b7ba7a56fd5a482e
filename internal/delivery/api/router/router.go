// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"biolink/config"
	"biolink/internal/delivery/api/middleware"
	"biolink/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler   *handler.ProfileHandler
	StyleHandler     *handler.StyleHandler
	LinkHandler      *handler.LinkHandler
	AnalyticsHandler *handler.AnalyticsHandler
	PublicHandler    *handler.PublicHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler   *handler.ProfileHandler
	styleHandler     *handler.StyleHandler
	linkHandler      *handler.LinkHandler
	analyticsHandler *handler.AnalyticsHandler
	publicHandler    *handler.PublicHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:   params.ProfileHandler,
		styleHandler:     params.StyleHandler,
		linkHandler:      params.LinkHandler,
		analyticsHandler: params.AnalyticsHandler,
		publicHandler:    params.PublicHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Visitor-facing routes
	e.GET("/p/:username", r.publicHandler.GetPublicPage)
	e.GET("/p/:username/qr", r.publicHandler.GetPublicQRCode)
	e.GET("/l/:id", r.publicHandler.RedirectLink)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/profile", r.profileHandler.GetProfile)
	apiV1.PUT("/profile", r.profileHandler.UpdateProfile)
	apiV1.GET("/qr", r.publicHandler.GetOwnQRCode)

	// Template and style routes
	apiV1.GET("/template", r.styleHandler.GetTemplateOverride)
	apiV1.PUT("/template", r.styleHandler.UpdateTemplateOverride)
	apiV1.GET("/templates", r.styleHandler.ListTemplates)
	apiV1.GET("/templates/:id/preview", r.styleHandler.PreviewTemplate)
	apiV1.GET("/style", r.styleHandler.GetEffectiveStyle)
	apiV1.POST("/style/preview", r.styleHandler.PreviewDraft)

	// Link management routes
	linksGroup := apiV1.Group("/links")
	{
		linksGroup.GET("", r.linkHandler.ListLinks)
		linksGroup.POST("", r.linkHandler.CreateLink)
		linksGroup.POST("/reorder", r.linkHandler.ReorderLinks)
		linksGroup.PUT("/:id", r.linkHandler.UpdateLink)
		linksGroup.DELETE("/:id", r.linkHandler.DeleteLink)
	}

	apiV1.GET("/analytics/links", r.analyticsHandler.GetLinkStats)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply access token authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
