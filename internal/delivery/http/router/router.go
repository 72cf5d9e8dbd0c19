// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"userauth/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler: params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	e.POST("/users", r.userHandler.RegisterUser)
	e.POST("/userlogin", r.userHandler.Login)
}
