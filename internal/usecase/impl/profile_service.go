package impl

import (
	"context"
	"log/slog"
	"strings"

	"gobarber/internal/domain/entity"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/domain/repository"
	"gobarber/internal/domain/service"
	"gobarber/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// ShowProfile retrieves the profile of the given user.
func (srv *profileService) ShowProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateProfile mutates the user's name, email and optionally password.
// Changing the password requires the correct current password; changing the
// email requires the new address not to belong to another account.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.logger.Debug("Starting profile update", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile update failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if !strings.EqualFold(input.Email, user.Email) {
		other, err := srv.userRepo.FindByEmail(ctx, input.Email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check email availability")
		}
		if err == nil && other.ID != user.ID {
			return nil, errors.Wrap(domainerrors.ErrEmailInUse, "profile update failed")
		}
	}

	if input.Password != "" {
		if input.OldPassword == "" {
			return nil, errors.Wrap(domainerrors.ErrOldPasswordRequired, "profile update failed")
		}
		if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
			return nil, errors.Wrap(domainerrors.ErrOldPasswordMismatch, "profile update failed")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.logger.Error("Failed to hash password", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		user.PasswordHash = hash
	}

	user.Name = input.Name
	user.Email = input.Email

	if err := srv.userRepo.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save user")
	}

	srv.logger.Info("Profile updated", slog.Any("userID", user.ID))

	return user, nil
}
