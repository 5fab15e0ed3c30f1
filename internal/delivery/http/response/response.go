package response

import (
	"net/http"
	"time"

	"gobarber/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "USER_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// UserView is the externally visible shape of a user. The password digest
// never leaves the service.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserView maps a user entity to its external shape.
func NewUserView(user *entity.User) UserView {
	return UserView{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewUserViews maps a slice of user entities to their external shape.
func NewUserViews(users []*entity.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, NewUserView(user))
	}

	return views
}

// AppointmentView is the externally visible shape of an appointment.
type AppointmentView struct {
	ID         uuid.UUID `json:"id"`
	ProviderID uuid.UUID `json:"provider_id"`
	UserID     uuid.UUID `json:"user_id"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewAppointmentView maps an appointment entity to its external shape.
func NewAppointmentView(appointment *entity.Appointment) AppointmentView {
	return AppointmentView{
		ID:         appointment.ID,
		ProviderID: appointment.ProviderID,
		UserID:     appointment.UserID,
		Date:       appointment.Date,
		CreatedAt:  appointment.CreatedAt,
		UpdatedAt:  appointment.UpdatedAt,
	}
}

// NewAppointmentViews maps a slice of appointment entities to their external shape.
func NewAppointmentViews(appointments []*entity.Appointment) []AppointmentView {
	views := make([]AppointmentView, 0, len(appointments))
	for _, appointment := range appointments {
		views = append(views, NewAppointmentView(appointment))
	}

	return views
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}
