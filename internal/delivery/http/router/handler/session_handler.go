package handler

import (
	"log/slog"
	"net/http"

	"gobarber/internal/delivery/http/response"
	"gobarber/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// sessionView is the login response payload.
type sessionView struct {
	User  response.UserView `json:"user"`
	Token string            `json:"token"`
}

// CreateSession handles the login request.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var input usecase.AuthenticateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AuthenticateUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionView{
		User:  response.NewUserView(output.User),
		Token: output.Token,
	}, "Login successful")
}
