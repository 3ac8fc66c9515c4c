// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"trace/internal/delivery/http/middleware"
	"trace/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	EnergyHandler  *handler.EnergyHandler
	ContentHandler *handler.ContentHandler
	ProductHandler *handler.ProductHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	energyHandler  *handler.EnergyHandler
	contentHandler *handler.ContentHandler
	productHandler *handler.ProductHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		energyHandler:  params.EnergyHandler,
		contentHandler: params.ContentHandler,
		productHandler: params.ProductHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Energy tracking requires an authenticated user.
	energyGroup := e.Group("/energy")
	energyGroup.Use(r.authMiddleware.Authenticate)
	{
		energyGroup.GET("/today", r.energyHandler.ListToday)
		energyGroup.POST("/today", r.energyHandler.RecordToday)
	}

	// Content feed is public.
	contentGroup := e.Group("/content")
	{
		contentGroup.GET("", r.contentHandler.List)
		contentGroup.GET("/categories", r.contentHandler.Categories)
		contentGroup.GET("/:id", r.contentHandler.Get)
	}

	// Product registry. Reads and the verification flow are public;
	// registration and updates require an authenticated operator.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate)
		productGroup.GET("/detail", r.productHandler.Get)
		productGroup.PUT("/detail", r.productHandler.Update, r.authMiddleware.Authenticate)
		productGroup.POST("/batch-import", r.productHandler.BatchImport, r.authMiddleware.Authenticate)
		productGroup.POST("/verify", r.productHandler.Verify)
		productGroup.GET("/:id/verification-history", r.productHandler.VerificationHistory)
		productGroup.GET("/:id/qrcode", r.productHandler.QRCode)
	}
}
