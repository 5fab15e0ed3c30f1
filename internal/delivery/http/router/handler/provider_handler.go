package handler

import (
	"log/slog"
	"net/http"

	"gobarber/internal/delivery/http/response"
	"gobarber/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProviderHandler holds dependencies for provider-related handlers.
type ProviderHandler struct {
	uc     usecase.ProviderUsecase
	logger *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler, injected by Fx.
func NewProviderHandler(uc usecase.ProviderUsecase, logger *slog.Logger) *ProviderHandler {
	return &ProviderHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProviders returns every provider except the authenticated user.
func (h *ProviderHandler) ListProviders(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providers, err := h.uc.ListProviders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewUserViews(providers), "Providers retrieved successfully")
}

// MonthAvailability returns the free/busy state of each day of a month.
func (h *ProviderHandler) MonthAvailability(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("provider_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid provider id")
	}

	year, month, err := monthQueryParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid year/month query parameters")
	}

	availability, err := h.uc.MonthAvailability(c.Request().Context(), &usecase.MonthAvailabilityInput{
		ProviderID: providerID,
		Year:       year,
		Month:      month,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, availability, "Month availability retrieved successfully")
}

// DayAvailability returns the free/busy state of each working hour of a day.
func (h *ProviderHandler) DayAvailability(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("provider_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid provider id")
	}

	year, month, day, err := dayQueryParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid year/month/day query parameters")
	}

	availability, err := h.uc.DayAvailability(c.Request().Context(), &usecase.DayAvailabilityInput{
		ProviderID: providerID,
		Year:       year,
		Month:      month,
		Day:        day,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, availability, "Day availability retrieved successfully")
}
