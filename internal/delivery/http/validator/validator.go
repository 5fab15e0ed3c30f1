// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "gobarber/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for use as echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags of a bound request payload. Failures are
// surfaced as the uniform validation error so the error handler renders them
// with a 400 status.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
