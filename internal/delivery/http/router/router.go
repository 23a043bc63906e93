// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler: params.ProductHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public menu routes
	menuGroup := e.Group("/menu")
	{
		menuGroup.GET("", r.productHandler.GetMenu)
		menuGroup.GET("/:id", r.productHandler.GetProduct)
	}

	// Session cart routes, keyed by the cart cookie rather than a login
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:productId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Order routes, all behind a login. Checkout attaches the order to the
	// authenticated user.
	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder, r.authMiddleware.Authenticate)
		orderGroup.GET("", r.orderHandler.ListOrders, r.authMiddleware.Authenticate)
		orderGroup.GET("/:id", r.orderHandler.GetOrder, r.authMiddleware.Authenticate)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireOrderManager)
		orderGroup.DELETE("/:id", r.orderHandler.DeleteOrder, r.authMiddleware.Authenticate)
	}

	// Public order tracking, safe to share: contact details are never exposed
	trackGroup := e.Group("/track")
	{
		trackGroup.GET("/:id", r.orderHandler.TrackOrder)
		trackGroup.GET("/:id/qrcode", r.orderHandler.TrackingQR)
	}

	// Catalog management routes for staff and admins
	adminGroup := e.Group("/admin/products")
	adminGroup.Use(r.authMiddleware.Authenticate)            // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireProductManager)   // Then, check for the role
	{
		adminGroup.GET("", r.productHandler.ListProducts)
		adminGroup.POST("", r.productHandler.CreateProduct)
		adminGroup.PATCH("/:id", r.productHandler.UpdateProduct)
		adminGroup.PATCH("/:id/availability", r.productHandler.SetAvailability)
		adminGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}
}
