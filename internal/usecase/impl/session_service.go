// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/domain/repository"
	"gobarber/internal/domain/service"
	"gobarber/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService. It receives all dependencies as interfaces.
func NewSessionService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// AuthenticateUser validates the credentials and issues a session token.
// An unknown email and a wrong password both fail with ErrInvalidCredentials
// so the caller can never tell which one was incorrect.
func (srv *sessionService) AuthenticateUser(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	srv.logger.Debug("Starting user authentication", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Authentication failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Authentication failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		srv.logger.Error("Failed to generate session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.logger.Debug("User authenticated successfully", slog.Any("userID", user.ID))

	return &usecase.AuthenticateOutput{
		User:  user,
		Token: token,
	}, nil
}
