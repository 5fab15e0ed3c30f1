// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gobarber/internal/delivery/http/middleware"
	"gobarber/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	SessionHandler     *handler.SessionHandler
	ProfileHandler     *handler.ProfileHandler
	AppointmentHandler *handler.AppointmentHandler
	ProviderHandler    *handler.ProviderHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	sessionHandler     *handler.SessionHandler
	profileHandler     *handler.ProfileHandler
	appointmentHandler *handler.AppointmentHandler
	providerHandler    *handler.ProviderHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		sessionHandler:     params.SessionHandler,
		profileHandler:     params.ProfileHandler,
		appointmentHandler: params.AppointmentHandler,
		providerHandler:    params.ProviderHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.POST("/users", r.userHandler.RegisterUser)
	e.POST("/sessions", r.sessionHandler.CreateSession)

	// Profile routes that require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.ShowProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
	}

	// Appointment routes that require authentication
	appointmentGroup := e.Group("/appointments")
	appointmentGroup.Use(r.authMiddleware.Authenticate)
	{
		appointmentGroup.POST("", r.appointmentHandler.CreateAppointment)
		appointmentGroup.GET("/me", r.appointmentHandler.ListMyAppointments)
	}

	// Provider routes that require authentication
	providerGroup := e.Group("/providers")
	providerGroup.Use(r.authMiddleware.Authenticate)
	{
		providerGroup.GET("", r.providerHandler.ListProviders)
		providerGroup.GET("/:provider_id/month-availability", r.providerHandler.MonthAvailability)
		providerGroup.GET("/:provider_id/day-availability", r.providerHandler.DayAvailability)
	}
}
