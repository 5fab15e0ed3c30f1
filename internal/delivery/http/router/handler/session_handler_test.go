package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gobarber/internal/delivery/http/middleware"
	"gobarber/internal/delivery/http/validator"
	"gobarber/internal/domain/entity"
	"gobarber/internal/infra/persistence/memory"
	"gobarber/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

type staticTokenService struct{}

func (staticTokenService) GenerateToken(userID uuid.UUID) (string, error) {
	return "token-" + userID.String(), nil
}

func (staticTokenService) ValidateToken(token string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimPrefix(token, "token-"))
}

// newSessionTestServer wires the login route through the real validator and
// error handler so responses match production behavior.
func newSessionTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := memory.NewUserRepository()
	require.NoError(t, userRepo.Create(t.Context(), &entity.User{
		Name:         "John Doe",
		Email:        "johndoe@example.com",
		PasswordHash: "hashed:123456",
	}))

	sessionHandler := NewSessionHandler(
		impl.NewSessionService(userRepo, plainHasher{}, staticTokenService{}, logger),
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/sessions", sessionHandler.CreateSession)

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestSessionHandler_CreateSession(t *testing.T) {
	t.Parallel()

	t.Run("returns the user and token on valid credentials", func(t *testing.T) {
		t.Parallel()

		e := newSessionTestServer(t)

		rec := postJSON(e, "/sessions", `{"email":"johndoe@example.com","password":"123456"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"token-`)
		assert.Contains(t, rec.Body.String(), `"email":"johndoe@example.com"`)
		assert.NotContains(t, rec.Body.String(), "hashed:123456")
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("returns 401 with the uniform message on wrong password", func(t *testing.T) {
		t.Parallel()

		e := newSessionTestServer(t)

		rec := postJSON(e, "/sessions", `{"email":"johndoe@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Incorrect email/password combination")
	})

	t.Run("returns 401 with the uniform message on unknown email", func(t *testing.T) {
		t.Parallel()

		e := newSessionTestServer(t)

		rec := postJSON(e, "/sessions", `{"email":"nobody@example.com","password":"123456"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Incorrect email/password combination")
	})

	t.Run("returns 400 on a malformed email", func(t *testing.T) {
		t.Parallel()

		e := newSessionTestServer(t)

		rec := postJSON(e, "/sessions", `{"email":"not-an-email","password":"123456"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
