// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pwaudit/internal/delivery/api/middleware"
	"pwaudit/internal/delivery/api/router/handler"
	"pwaudit/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BreachHandler   *handler.BreachHandler
	PasswordHandler *handler.PasswordHandler
	ActivityHandler *handler.ActivityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	breachHandler   *handler.BreachHandler
	passwordHandler *handler.PasswordHandler
	activityHandler *handler.ActivityHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		breachHandler:   params.BreachHandler,
		passwordHandler: params.PasswordHandler,
		activityHandler: params.ActivityHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	breachGroup := apiV1.Group("/breach")
	{
		breachGroup.POST("/check", r.breachHandler.CheckBreach)
		breachGroup.POST("/range", r.breachHandler.Range)
	}

	passwordsGroup := apiV1.Group("/passwords")
	{
		passwordsGroup.POST("/generate", r.passwordHandler.Generate)
	}

	// Operator routes require authentication and the admin role
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/activity", r.activityHandler.GetActivity)
	}
}
