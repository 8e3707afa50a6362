// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"locust/internal/delivery/api/middleware"
	"locust/internal/delivery/api/router/handler"
	"locust/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IngestHandler    *handler.IngestHandler
	DashboardHandler *handler.DashboardHandler
	PushHandler      *handler.PushHandler
	DeviceHandler    *handler.DeviceHandler
	APIKeyMiddleware *middleware.APIKeyMiddleware
	Metrics          *metrics.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	ingestHandler    *handler.IngestHandler
	dashboardHandler *handler.DashboardHandler
	pushHandler      *handler.PushHandler
	deviceHandler    *handler.DeviceHandler
	apiKeyMiddleware *middleware.APIKeyMiddleware
	metrics          *metrics.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		ingestHandler:    params.IngestHandler,
		dashboardHandler: params.DashboardHandler,
		pushHandler:      params.PushHandler,
		deviceHandler:    params.DeviceHandler,
		apiKeyMiddleware: params.APIKeyMiddleware,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	api := e.Group("/api")

	// Device-facing routes require the shared ingest key
	api.POST("/ingest", r.ingestHandler.Ingest, r.apiKeyMiddleware.Authenticate)
	api.GET("/devices/enroll/qrcode", r.deviceHandler.GetEnrollmentQR, r.apiKeyMiddleware.Authenticate)

	// Dashboard routes
	api.GET("/dashboard", r.dashboardHandler.GetDashboard)
	api.GET("/devices/:deviceId/track", r.deviceHandler.GetTrack)

	pushGroup := api.Group("/push")
	{
		pushGroup.POST("/subscribe", r.pushHandler.Subscribe)
		pushGroup.GET("/public-key", r.pushHandler.PublicKey)
	}
}
