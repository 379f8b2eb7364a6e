// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"figures/internal/delivery/api/middleware"
	"figures/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler      *handler.ProfileHandler
	UserHandler         *handler.UserHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler      *handler.ProfileHandler
	userHandler         *handler.UserHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:      params.ProfileHandler,
		userHandler:         params.UserHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Public catalog
	profilesGroup := e.Group("/profiles")
	{
		profilesGroup.GET("", r.profileHandler.ListProfiles)
		profilesGroup.GET("/:id", r.profileHandler.GetProfile)
	}

	// Everything below acts on the verified caller only
	usersGroup := e.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.POST("", r.userHandler.FindOrCreateUser)
		usersGroup.GET("/favorites", r.userHandler.ListFavorites)
		usersGroup.POST("/favorites/:profileId", r.userHandler.AddFavorite)
		usersGroup.DELETE("/favorites/:profileId", r.userHandler.RemoveFavorite)
	}

	notificationsGroup := e.Group("/notifications")
	notificationsGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationsGroup.POST("/send", r.notificationHandler.SendNotification)
	}
}
