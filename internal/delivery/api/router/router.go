// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"itinerary/internal/delivery/api/middleware"
	"itinerary/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TripHandler         *handler.TripHandler
	OptimizationHandler *handler.OptimizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	tripHandler         *handler.TripHandler
	optimizationHandler *handler.OptimizationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		tripHandler:         params.TripHandler,
		optimizationHandler: params.OptimizationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	tripsGroup := apiV1.Group("/trips")
	{
		tripsGroup.GET("", r.tripHandler.ListTrips)
		tripsGroup.GET("/:tripId", r.tripHandler.GetTrip)
		tripsGroup.PATCH("/:tripId/status", r.tripHandler.UpdateTripStatus)
	}

	daysGroup := apiV1.Group("/days")
	{
		daysGroup.GET("/:dayId", r.tripHandler.GetDay)
		daysGroup.GET("/:dayId/route/qrcode", r.optimizationHandler.RouteQRCode)

		daysGroup.POST("/:dayId/optimization", r.optimizationHandler.OptimizeDay)
		daysGroup.GET("/:dayId/optimization", r.optimizationHandler.GetOptimization)
		daysGroup.DELETE("/:dayId/optimization", r.optimizationHandler.ClearOptimization)
		daysGroup.POST("/:dayId/optimization/accept", r.optimizationHandler.AcceptOptimization)
	}
}
