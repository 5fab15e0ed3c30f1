package service

import (
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
// Tokens are ephemeral and never persisted; the only payload is the subject
// claim carrying the user id.
type TokenService interface {
	// GenerateToken creates a new signed session token for a given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string and returns the
	// user id carried in the subject claim.
	ValidateToken(tokenString string) (uuid.UUID, error)
}
