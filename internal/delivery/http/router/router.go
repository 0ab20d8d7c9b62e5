// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"userhub/internal/delivery/http/middleware"
	"userhub/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	profileGroup := e.Group("/profiles")
	{
		profileGroup.POST("", r.profileHandler.CreateProfile)
		profileGroup.GET("", r.profileHandler.GetAllProfiles)

		// Static segments before the :id wildcard so lookups by phone,
		// document and the availability checks are never shadowed.
		profileGroup.GET("/phone/:phone", r.profileHandler.GetProfileByPhone)
		profileGroup.GET("/document/:documentNumber", r.profileHandler.GetProfileByDocumentNumber)
		profileGroup.GET("/validate/phone/:phone", r.profileHandler.ValidatePhone)
		profileGroup.GET("/validate/document/:documentNumber", r.profileHandler.ValidateDocumentNumber)

		profileGroup.GET("/:id", r.profileHandler.GetProfile)
		profileGroup.PUT("/:id", r.profileHandler.UpdateProfile)
	}

	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.RegisterUser)
		userGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
		userGroup.GET("/:id", r.userHandler.GetUser)
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)
	}
}
