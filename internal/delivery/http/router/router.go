// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homestay/internal/delivery/http/middleware"
	"homestay/internal/delivery/http/router/handler"
	"homestay/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ViewerHandler  *handler.ViewerHandler
	PaymentHandler *handler.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Collector
}

// router holds all the handlers that need to be registered.
type router struct {
	viewerHandler  *handler.ViewerHandler
	paymentHandler *handler.PaymentHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Collector
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		viewerHandler:  params.ViewerHandler,
		paymentHandler: params.PaymentHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// OAuth entry point
	e.GET("/oauth/google", r.viewerHandler.GoogleLogin)

	// Viewer routes. Sign-in resolves identity itself, the wallet routes
	// require the viewer resolved from cookie and session token.
	viewerGroup := e.Group("/viewer")
	{
		viewerGroup.POST("/sign-in", r.viewerHandler.SignIn)
		viewerGroup.POST("/sign-out", r.viewerHandler.SignOut)

		stripeGroup := viewerGroup.Group("/stripe")
		stripeGroup.Use(r.authMiddleware.ResolveViewer)
		stripeGroup.POST("/connect", r.paymentHandler.ConnectStripe)
		stripeGroup.POST("/disconnect", r.paymentHandler.DisconnectStripe)
	}
}
