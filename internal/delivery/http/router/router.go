// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ratestack/internal/delivery/http/middleware"
	"ratestack/internal/delivery/http/router/handler"
	"ratestack/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AdminHandler   *handler.AdminHandler
	StoreHandler   *handler.StoreHandler
	OwnerHandler   *handler.OwnerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	adminHandler   *handler.AdminHandler
	storeHandler   *handler.StoreHandler
	ownerHandler   *handler.OwnerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		adminHandler:   params.AdminHandler,
		storeHandler:   params.StoreHandler,
		ownerHandler:   params.OwnerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Each group
// declares the exact role set it admits; there is no role hierarchy.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes; the password update is the one authenticated call
	// in the group.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.PUT("/password", r.authHandler.UpdatePassword, r.authMiddleware.Authenticate)
	}

	// Administrator-only management surface
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRoles(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.POST("/stores", r.adminHandler.CreateStore)
		adminGroup.GET("/stores", r.adminHandler.ListStores)
	}

	// Store browsing and rating, open to every authenticated role
	storeGroup := e.Group("/stores")
	storeGroup.Use(r.authMiddleware.Authenticate)
	storeGroup.Use(r.authMiddleware.RequireRoles(entity.RoleAdmin, entity.RoleOwner, entity.RoleUser))
	{
		storeGroup.GET("", r.storeHandler.ListStores)
		storeGroup.POST("/:id/rating", r.storeHandler.SubmitRating)
	}

	// Store-owner dashboard
	ownerGroup := e.Group("/owner")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	ownerGroup.Use(r.authMiddleware.RequireRoles(entity.RoleOwner))
	{
		ownerGroup.GET("/dashboard", r.ownerHandler.Dashboard)
	}
}
