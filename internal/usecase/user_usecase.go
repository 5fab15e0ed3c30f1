package usecase

import (
	"context"

	"gobarber/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
}
