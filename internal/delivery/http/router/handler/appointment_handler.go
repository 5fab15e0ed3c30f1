package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gobarber/internal/delivery/http/response"
	"gobarber/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AppointmentHandler holds dependencies for appointment-related handlers.
type AppointmentHandler struct {
	uc     usecase.AppointmentUsecase
	logger *slog.Logger
}

// NewAppointmentHandler is the constructor for AppointmentHandler, injected by Fx.
func NewAppointmentHandler(uc usecase.AppointmentUsecase, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateAppointment handles the booking request. The customer is always the
// authenticated user, never taken from the payload.
func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateAppointmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}
	input.UserID = userID

	appointment, err := h.uc.CreateAppointment(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.NewAppointmentView(appointment), "Appointment created successfully")
}

// ListMyAppointments returns the authenticated provider's schedule of a day.
func (h *AppointmentHandler) ListMyAppointments(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	year, month, day, err := dayQueryParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid year/month/day query parameters")
	}

	appointments, err := h.uc.ListProviderAppointments(c.Request().Context(), &usecase.ListProviderAppointmentsInput{
		ProviderID: userID,
		Year:       year,
		Month:      month,
		Day:        day,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewAppointmentViews(appointments), "Appointments retrieved successfully")
}

// dayQueryParams parses the year, month and day query parameters.
func dayQueryParams(c echo.Context) (int, time.Month, int, error) {
	year, month, err := monthQueryParams(c)
	if err != nil {
		return 0, 0, 0, err
	}

	day, err := strconv.Atoi(c.QueryParam("day"))
	if err != nil || day < 1 || day > 31 {
		return 0, 0, 0, errors.New("invalid day")
	}

	return year, month, day, nil
}

// monthQueryParams parses the year and month query parameters.
func monthQueryParams(c echo.Context) (int, time.Month, error) {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year < 1 {
		return 0, 0, errors.New("invalid year")
	}

	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errors.New("invalid month")
	}

	return year, time.Month(month), nil
}
