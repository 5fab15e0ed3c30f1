package usecase

import (
	"context"

	"gobarber/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the data required to update a user's profile.
// Name and email are applied unconditionally. A non-empty Password requests a
// password change and must be accompanied by the matching OldPassword.
type UpdateProfileInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password,omitempty" validate:"omitempty,min=6"`
	OldPassword string `json:"old_password,omitempty"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// ShowProfile retrieves the profile of the given user.
	ShowProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile mutates the user's name, email and optionally password,
	// and returns the updated user.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}
