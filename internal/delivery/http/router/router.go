// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"finledger/internal/delivery/http/middleware"
	"finledger/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ApplicationHandler *handler.ApplicationHandler
	UserHandler        *handler.UserHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	applicationHandler *handler.ApplicationHandler
	userHandler        *handler.UserHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		applicationHandler: params.ApplicationHandler,
		userHandler:        params.UserHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.GetMe, r.authMiddleware.Authenticate)
	}

	// Application records, all owner-scoped behind authentication
	appGroup := e.Group("/applications")
	appGroup.Use(r.authMiddleware.Authenticate)
	{
		appGroup.POST("", r.applicationHandler.Create)
		appGroup.GET("", r.applicationHandler.List)
		appGroup.GET("/:id", r.applicationHandler.Get)
		appGroup.PUT("/:id", r.applicationHandler.Update)
		appGroup.DELETE("/:id", r.applicationHandler.Delete)
	}

	// Public user directory
	e.GET("/users", r.userHandler.ListUsers)
}
