// Package usecase contains the application-specific business rules.
// It defines the contracts that the delivery layer (e.g., API handlers) depends on.
package usecase

import (
	"context"

	"gobarber/internal/domain/entity"
)

// AuthenticateInput defines the data required for a user to authenticate.
type AuthenticateInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthenticateOutput returns the authenticated user and the session token.
// The user still carries the password digest; the delivery layer strips it
// before external exposure.
type AuthenticateOutput struct {
	User  *entity.User
	Token string
}

// SessionUsecase defines the interface for session-related business operations.
type SessionUsecase interface {
	// AuthenticateUser validates the credentials and issues a signed session
	// token whose subject is the user id.
	AuthenticateUser(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
}
