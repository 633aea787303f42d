// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"orderpad/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	OrderHandler      *handler.OrderHandler
	HistoryHandler    *handler.HistoryHandler
	PreferenceHandler *handler.PreferenceHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	orderHandler      *handler.OrderHandler
	historyHandler    *handler.HistoryHandler
	preferenceHandler *handler.PreferenceHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		orderHandler:      params.OrderHandler,
		historyHandler:    params.HistoryHandler,
		preferenceHandler: params.PreferenceHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("", r.catalogHandler.List)
		catalogGroup.POST("", r.catalogHandler.Add)
		catalogGroup.DELETE("/:id", r.catalogHandler.Remove)
	}

	// Order draft routes
	orderGroup := e.Group("/order")
	{
		orderGroup.GET("", r.orderHandler.Get)
		orderGroup.GET("/total", r.orderHandler.Total)
		orderGroup.PUT("/items/:id", r.orderHandler.SetQuantity)
		orderGroup.POST("/items/:id/increment", r.orderHandler.Increment)
		orderGroup.POST("/items/:id/decrement", r.orderHandler.Decrement)
		orderGroup.POST("/reset", r.orderHandler.Reset)
		orderGroup.POST("/load-last", r.orderHandler.LoadLast)
		orderGroup.POST("/save", r.orderHandler.Save)
	}

	// Saved order history routes
	historyGroup := e.Group("/history")
	{
		historyGroup.GET("", r.historyHandler.List)
		historyGroup.GET("/export", r.historyHandler.Export)
		historyGroup.GET("/:id", r.historyHandler.Get)
		historyGroup.POST("/delete", r.historyHandler.Delete)
	}

	// UI preference routes
	preferenceGroup := e.Group("/preference")
	{
		preferenceGroup.GET("/theme", r.preferenceHandler.GetTheme)
		preferenceGroup.PUT("/theme", r.preferenceHandler.SetTheme)
	}
}
