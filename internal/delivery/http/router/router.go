// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	userGroup := e.Group("/api/users")
	{
		// Public count, no authentication required.
		userGroup.GET("/count", r.accountHandler.Count)

		// Self-service routes for any authenticated account. The profile
		// update answers on both paths.
		userGroup.GET("/profile", r.accountHandler.GetProfile, r.authMiddleware.Authenticate)
		userGroup.PUT("/profile", r.accountHandler.UpdateProfile, r.authMiddleware.Authenticate)
		userGroup.PUT("/update-profile", r.accountHandler.UpdateProfile, r.authMiddleware.Authenticate)
		userGroup.PUT("/change-password", r.accountHandler.ChangePassword, r.authMiddleware.Authenticate)

		// Directory routes that require authentication and the admin role.
		adminOnly := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin}
		userGroup.GET("", r.accountHandler.List, adminOnly...)
		userGroup.GET("/:id", r.accountHandler.GetByID, adminOnly...)
		userGroup.DELETE("/:id", r.accountHandler.Delete, adminOnly...)
		userGroup.PUT("/:id/activate", r.accountHandler.Activate, adminOnly...)
		userGroup.PUT("/:id/deactivate", r.accountHandler.Deactivate, adminOnly...)
		userGroup.PUT("/:id/status", r.accountHandler.UpdateStatus, adminOnly...)
	}
}
