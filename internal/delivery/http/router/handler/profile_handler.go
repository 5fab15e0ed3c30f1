package handler

import (
	"log/slog"
	"net/http"

	"gobarber/internal/delivery/http/response"
	"gobarber/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// ShowProfile handles the request to get the current user's profile.
func (h *ProfileHandler) ShowProfile(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.ShowProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewUserView(user), "Profile retrieved successfully")
}

// UpdateProfile handles the request to update the current user's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewUserView(user), "Profile updated successfully")
}
