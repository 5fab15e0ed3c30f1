// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"gobarber/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDFromContext reads the authenticated user id stored by the auth middleware.
func userIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
